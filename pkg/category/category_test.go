package category_test

import (
	"regexp"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

const header = "user_agent_string,family,version_string,version_major,version_minor,version_patch,version_patch_minor,os_family,os_version_string,os_version_major,os_version_minor,os_version_patch,os_version_patch_minor,device_family,device_model,device_brand\n"

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"browsers.csv": &fstest.MapFile{Data: []byte(header +
			`"Mozilla/5.0 (Windows NT 10.0) Chrome/100.0.4896.127 Safari/537.36",Chrome,100.0.4896.127,100,0,4896,127,Windows,10,10,,,,Other,,` + "\n" +
			`"Mozilla/5.0 (X11; Linux x86_64; rv:98.0) Gecko/20100101 Firefox/98.0",Firefox,98.0,98,0,,,Linux,,,,,,Other,,` + "\n" +
			`"Mozilla/5.0 (iPhone; CPU iPhone OS 15_4 like Mac OS X) Version/15.4 Mobile/15E148 Safari/604.1",Mobile Safari,15.4,15,4,,,iOS,15.4,15,4,,,iPhone,iPhone,Apple` + "\n")},
		"bots.csv": &fstest.MapFile{Data: []byte(header +
			`Googlebot/2.1 (+http://www.google.com/bot.html),Googlebot,2.1,2,1,,,Other,,,,,,Spider,Desktop,Spider` + "\n")},
		"empty.csv":  &fstest.MapFile{Data: []byte(header)},
		"broken.csv": &fstest.MapFile{Data: []byte(header + "only,three,columns\n")},
	}
}

func load(t *testing.T, name string) *category.Category {
	t.Helper()
	cat, err := category.LoadFrom(category.NewCSVProvider(testFS()), name)
	require.NoError(t, err)
	return cat
}

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("records in file order", func(t *testing.T) {
		t.Parallel()
		cat := load(t, "browsers")
		assert.Equal(t, "browsers", cat.Name())
		require.Equal(t, 3, cat.Len())

		recs := cat.Records()
		assert.Equal(t, "Chrome", recs[0].Family)
		assert.Equal(t, "Firefox", recs[1].Family)
		assert.Equal(t, "Mobile Safari", recs[2].Family)

		require.NotNil(t, recs[0].Version)
		assert.Equal(t, "100.0.4896.127", recs[0].Version.Raw)
		assert.Equal(t, "4896", recs[0].Version.Patch)
		assert.Equal(t, "127", recs[0].Version.PatchMinor)
		assert.Equal(t, "Apple", recs[2].Device.Brand)
	})

	t.Run("empty version column means absent", func(t *testing.T) {
		t.Parallel()
		recs := load(t, "browsers").Records()
		assert.Nil(t, recs[1].OS.Version)
		assert.Equal(t, "Linux", recs[1].OS.Family)
		assert.Equal(t, "Linux", recs[1].OS.String())
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		_, err := category.LoadFrom(category.NewCSVProvider(testFS()), "nope")
		assert.ErrorIs(t, err, useragent.ErrDataNotFound)
	})

	t.Run("path-like names are rejected", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"", "../bots", "a/b", `a\b`} {
			_, err := category.LoadFrom(category.NewCSVProvider(testFS()), name)
			assert.ErrorIs(t, err, useragent.ErrDataNotFound, name)
		}
	})

	t.Run("malformed corpus", func(t *testing.T) {
		t.Parallel()
		_, err := category.LoadFrom(category.NewCSVProvider(testFS()), "broken")
		assert.ErrorIs(t, err, category.ErrMalformedCorpus)
	})

	t.Run("nil provider", func(t *testing.T) {
		t.Parallel()
		_, err := category.LoadFrom(nil, "bots")
		assert.ErrorIs(t, err, category.ErrNilProvider)
	})
}

func TestEmbeddedCorpora(t *testing.T) {
	t.Parallel()

	names, err := category.Names()
	require.NoError(t, err)
	assert.Subset(t, names, []string{
		"android", "bingbot", "chrome", "firefox", "googlebot",
		"internet_explorer", "ios", "opera", "safari",
	})
	assert.True(t, slices.IsSorted(names))

	for _, name := range names {
		cat, err := category.Load(name)
		require.NoError(t, err, name)
		assert.Positive(t, cat.Len(), name)
	}

	_, err = category.Load("netscape")
	assert.ErrorIs(t, err, useragent.ErrDataNotFound)
}

func TestCategory_Random(t *testing.T) {
	t.Parallel()

	t.Run("returns a member", func(t *testing.T) {
		t.Parallel()
		cat := load(t, "browsers")
		var raws []string
		for rec := range cat.All() {
			raws = append(raws, rec.Raw)
		}
		for range 50 {
			s, ok := cat.Random()
			require.True(t, ok)
			assert.Contains(t, raws, s)
		}
	})

	t.Run("empty category", func(t *testing.T) {
		t.Parallel()
		s, ok := load(t, "empty").Random()
		assert.False(t, ok)
		assert.Empty(t, s)
	})
}

func TestCategory_RandomMatching(t *testing.T) {
	t.Parallel()

	cat := load(t, "browsers")

	tests := []struct {
		name    string
		pattern string
		want    string
		ok      bool
	}{
		{name: "single match", pattern: `Firefox/98`, want: "Firefox/98.0", ok: true},
		{name: "anchored", pattern: `^Mozilla/5\.0 \(iPhone`, want: "iPhone OS 15_4", ok: true},
		{name: "no match", pattern: `Netscape`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, ok, err := cat.RandomMatching(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Contains(t, s, tt.want)
			} else {
				assert.Empty(t, s)
			}
		})
	}

	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, ok, err := cat.RandomMatching(`(`)
		assert.False(t, ok)
		assert.ErrorIs(t, err, useragent.ErrInvalidArgument)
	})

	t.Run("repeated pattern", func(t *testing.T) {
		t.Parallel()
		for range 10 {
			s, ok, err := cat.RandomMatching(`Chrome/\d+`)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, s, "Windows NT 10.0")
		}
	})
}

func TestCategory_RandomRegexpAndFunc(t *testing.T) {
	t.Parallel()

	cat := load(t, "browsers")

	s, ok := cat.RandomRegexp(regexp.MustCompile(`X11`))
	require.True(t, ok)
	assert.Contains(t, s, "Linux x86_64")

	s, ok = cat.RandomRegexp(nil)
	assert.True(t, ok)
	assert.NotEmpty(t, s)

	s, ok = cat.RandomFunc(useragent.IsMobile)
	require.True(t, ok)
	assert.Contains(t, s, "iPhone")

	s, ok = cat.RandomFunc(useragent.IsBot)
	assert.False(t, ok)
	assert.Empty(t, s)

	s, ok = cat.RandomFunc(nil)
	assert.True(t, ok)
	assert.NotEmpty(t, s)
}

func TestCategory_Iteration(t *testing.T) {
	t.Parallel()

	cat := load(t, "browsers")

	collect := func() []string {
		var out []string
		for rec := range cat.All() {
			out = append(out, rec.Family)
		}
		return out
	}

	want := []string{"Chrome", "Firefox", "Mobile Safari"}
	assert.Equal(t, want, collect())
	assert.Equal(t, want, collect(), "iteration restarts from the first record")

	var seen []string
	cat.Each(func(rec useragent.UserAgent) bool {
		seen = append(seen, rec.Family)
		return len(seen) < 2
	})
	assert.Equal(t, want[:2], seen)
}

func TestCategory_Concat(t *testing.T) {
	t.Parallel()

	browsers := load(t, "browsers")
	bots := load(t, "bots")

	all := browsers.Concat(bots)
	assert.Equal(t, "browsers+bots", all.Name())
	require.Equal(t, 4, all.Len())
	assert.Equal(t, 3, browsers.Len())
	assert.Equal(t, 1, bots.Len())

	var families []string
	for rec := range all.All() {
		families = append(families, rec.Family)
	}
	assert.Equal(t, []string{"Chrome", "Firefox", "Mobile Safari", "Googlebot"}, families)

	s, ok := all.RandomFunc(useragent.IsBot)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(s, "Googlebot/2.1"))

	self := browsers.Concat(nil)
	assert.Equal(t, browsers.Len(), self.Len())
}

func TestCategory_RecordsIsACopy(t *testing.T) {
	t.Parallel()

	cat := load(t, "bots")
	recs := cat.Records()
	recs[0].Raw = "changed"

	s, ok := cat.Random()
	require.True(t, ok)
	assert.NotEqual(t, "changed", s)
}

func TestNew(t *testing.T) {
	t.Parallel()

	src := []useragent.UserAgent{{Raw: "a"}, {Raw: "b"}}
	cat := category.New("letters", src)
	src[0].Raw = "z"

	assert.Equal(t, "a", cat.Records()[0].Raw)
}
