package category

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/dmitrymomot/useragents/data"
	"github.com/dmitrymomot/useragents/pkg/useragent"
)

// Columns is the fixed column layout of a corpus file.
var Columns = []string{
	"user_agent_string",
	"family",
	"version_string",
	"version_major",
	"version_minor",
	"version_patch",
	"version_patch_minor",
	"os_family",
	"os_version_string",
	"os_version_major",
	"os_version_minor",
	"os_version_patch",
	"os_version_patch_minor",
	"device_family",
	"device_model",
	"device_brand",
}

// CSVProvider reads "<name>.csv" corpora with a header row from a file system.
type CSVProvider struct {
	fsys fs.FS
}

// NewCSVProvider returns a provider reading corpora from the root of fsys.
func NewCSVProvider(fsys fs.FS) *CSVProvider {
	return &CSVProvider{fsys: fsys}
}

// DefaultProvider reads the corpora embedded in the module.
func DefaultProvider() *CSVProvider {
	return NewCSVProvider(data.UserAgents())
}

// Records loads every record of the named corpus in file order.
func (p *CSVProvider) Records(name string) ([]useragent.UserAgent, error) {
	file := name + ".csv"
	if name == "" || strings.ContainsAny(name, `/\`) || !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: invalid category name %q", useragent.ErrDataNotFound, name)
	}

	f, err := p.fsys.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: category %q", useragent.ErrDataNotFound, name)
		}
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// Names lists the corpora available to the provider, sorted.
func (p *CSVProvider) Names() ([]string, error) {
	matches, err := fs.Glob(p.fsys, "*.csv")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(path.Base(m), ".csv"))
	}
	sort.Strings(names)
	return names, nil
}

// ReadCSV parses a corpus with a header row into records.
func ReadCSV(r io.Reader) ([]useragent.UserAgent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Columns)
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrMalformedCorpus, err)
	}

	var records []useragent.UserAgent
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrMalformedCorpus, err)
		}
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func recordFromRow(row []string) useragent.UserAgent {
	return useragent.UserAgent{
		Raw:     row[0],
		Family:  row[1],
		Version: versionFromColumns(row[2:7]),
		OS: useragent.OS{
			Family:  row[7],
			Version: versionFromColumns(row[8:13]),
		},
		Device: useragent.Device{
			Family: row[13],
			Model:  row[14],
			Brand:  row[15],
		},
	}
}

// versionFromColumns returns nil when the version string column is empty.
func versionFromColumns(cols []string) *useragent.Version {
	if cols[0] == "" {
		return nil
	}
	return &useragent.Version{
		Raw:        cols[0],
		Major:      cols[1],
		Minor:      cols[2],
		Patch:      cols[3],
		PatchMinor: cols[4],
	}
}

// WriteCSV writes records in the corpus column layout, header first.
func WriteCSV(w io.Writer, records []useragent.UserAgent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}

	for _, rec := range records {
		row := make([]string, 0, len(Columns))
		row = append(row, rec.Raw, rec.Family)
		row = append(row, versionColumns(rec.Version)...)
		row = append(row, rec.OS.Family)
		row = append(row, versionColumns(rec.OS.Version)...)
		row = append(row, rec.Device.Family, rec.Device.Model, rec.Device.Brand)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func versionColumns(v *useragent.Version) []string {
	if v == nil {
		return []string{"", "", "", "", ""}
	}
	return []string{v.Raw, v.Major, v.Minor, v.Patch, v.PatchMinor}
}
