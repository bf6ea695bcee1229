package firefox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/useragents/pkg/firefox"
	"github.com/dmitrymomot/useragents/pkg/platform"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts firefox.Options
		want string
	}{
		{
			name: "android default device type",
			opts: firefox.Options{Version: "91.3.0", OS: platform.Android},
			want: "Mozilla/5.0 (Android; Mobile; rv:91.3.0) Gecko/91.3.0 Firefox/91.3.0",
		},
		{
			name: "android tablet ignores desktop fields",
			opts: firefox.Options{Version: "98.0", OS: platform.Android, DeviceType: "tablet", Lang: "en-US", Encryption: "usa"},
			want: "Mozilla/5.0 (Android; Tablet; rv:98.0) Gecko/98.0 Firefox/98.0",
		},
		{
			name: "windows",
			opts: firefox.Options{Version: "98.0", OS: platform.Windows, OSVersion: "10"},
			want: "Mozilla/5.0 (Windows NT 10.0; rv:98.0) Gecko/20100101 Firefox/98.0",
		},
		{
			name: "windows with arch",
			opts: firefox.Options{Version: "98.0", OS: platform.Windows, OSVersion: "8.1", Arch: "x86_64"},
			want: "Mozilla/5.0 (Windows NT 6.3; Win64; x64; rv:98.0) Gecko/20100101 Firefox/98.0",
		},
		{
			name: "macos keeps dots",
			opts: firefox.Options{Version: "97.0", OS: platform.MacOS, OSVersion: "10.15"},
			want: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:97.0) Gecko/20100101 Firefox/97.0",
		},
		{
			name: "linux bare",
			opts: firefox.Options{Version: "98.0", OS: platform.Linux},
			want: "Mozilla/5.0 (X11; Linux; rv:98.0) Gecko/20100101 Firefox/98.0",
		},
		{
			name: "linux with arch",
			opts: firefox.Options{Version: "98.0", OS: platform.Linux, Arch: "x86_64"},
			want: "Mozilla/5.0 (X11; Linux x86_64; rv:98.0) Gecko/20100101 Firefox/98.0",
		},
		{
			name: "linux every fragment",
			opts: firefox.Options{
				Version: "78.0", OS: platform.Linux, Encryption: "usa",
				LinuxDistro: "ubuntu", Arch: "i686", Lang: "en-US",
			},
			want: "Mozilla/5.0 (X11; U; Ubuntu; Linux i686; en-US; rv:78.0) Gecko/20100101 Firefox/78.0",
		},
		{
			name: "linux encryption and lang",
			opts: firefox.Options{Version: "78.0", OS: platform.Linux, Encryption: "no", Lang: "de"},
			want: "Mozilla/5.0 (X11; N; Linux; de; rv:78.0) Gecko/20100101 Firefox/78.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := firefox.Build(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts firefox.Options
	}{
		{name: "unsupported os", opts: firefox.Options{Version: "98.0", OS: "plan9"}},
		{name: "windows without version", opts: firefox.Options{Version: "98.0", OS: platform.Windows}},
		{name: "macos without version", opts: firefox.Options{Version: "98.0", OS: platform.MacOS}},
		{name: "unknown encryption", opts: firefox.Options{Version: "98.0", OS: platform.Linux, Encryption: "strong"}},
		{name: "unknown linux arch", opts: firefox.Options{Version: "98.0", OS: platform.Linux, Arch: "sparc"}},
		{name: "unknown windows arch", opts: firefox.Options{Version: "98.0", OS: platform.Windows, OSVersion: "10", Arch: "ia64"}},
		{name: "unknown device type", opts: firefox.Options{Version: "98.0", OS: platform.Android, DeviceType: "watch"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := firefox.Build(tt.opts)
			assert.ErrorIs(t, err, useragent.ErrInvalidArgument)
		})
	}
}

func TestBuild_AndroidGeckoEqualsVersion(t *testing.T) {
	t.Parallel()

	for _, v := range firefox.KnownVersions() {
		ua, err := firefox.Build(firefox.Options{Version: v, OS: platform.Android})
		require.NoError(t, err)
		assert.Contains(t, ua, "Gecko/"+v+" ")
		assert.NotContains(t, ua, firefox.DesktopGeckoVersion)
	}
}

func TestRandom(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, firefox.KnownVersions())
	require.NotEmpty(t, firefox.KnownLangs())

	for range 200 {
		ua, err := firefox.Random(firefox.Options{})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(ua, "Mozilla/5.0 ("), ua)
		assert.Contains(t, ua, " Firefox/")
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	t.Run("linux forwards encryption", func(t *testing.T) {
		t.Parallel()
		opts := firefox.Fill(firefox.Options{OS: platform.Linux, Encryption: "international"})
		ua, err := firefox.Build(opts)
		require.NoError(t, err)
		assert.Contains(t, ua, "(X11; I; ")
	})

	t.Run("android samples a device type", func(t *testing.T) {
		t.Parallel()
		opts := firefox.Fill(firefox.Options{OS: platform.Android})
		assert.Contains(t, firefox.DeviceTypes.SampleKeys(), opts.DeviceType)
		assert.Empty(t, opts.OSVersion)
	})

	t.Run("windows samples version", func(t *testing.T) {
		t.Parallel()
		opts := firefox.Fill(firefox.Options{OS: platform.Windows})
		assert.Contains(t, platform.KnownVersions(platform.Windows), opts.OSVersion)
		assert.Contains(t, firefox.KnownVersions(), opts.Version)
		assert.Contains(t, firefox.KnownLangs(), opts.Lang)
	})
}
