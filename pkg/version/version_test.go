package version_test

import (
	"runtime"
	"testing"

	"github.com/mook/hippie/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_String_Short_Full(t *testing.T) {
	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	defer func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC }()

	version.Version = "0.3.0"
	version.BuildTime = "2024-03-05T00:00:00Z"
	version.Commit = "c0ffee"

	info := version.Get()
	require.Equal(t, "0.3.0", info.Version)
	require.Equal(t, "2024-03-05T00:00:00Z", info.BuildTime)
	require.Equal(t, "c0ffee", info.Commit)
	require.NotEmpty(t, info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)

	assert.Equal(t, "0.3.0", version.Short())

	expected := "installrdf 0.3.0 (commit: c0ffee, built: 2024-03-05T00:00:00Z, " +
		runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + ")"
	assert.Equal(t, expected, info.String())
	assert.Equal(t, expected, version.Full())
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "dev", version.Version)
	assert.Equal(t, "unknown", version.Commit)
}
