// Package data embeds the static word lists and User-Agent corpora shipped
// with the module.
package data

import (
	"bufio"
	"bytes"
	"embed"
	"io/fs"
	"sync"
)

//go:embed chrome/versions.txt firefox/versions.txt firefox/langs.txt android/devices.txt user_agents/*.csv
var files embed.FS

// UserAgentsDir is the directory holding the "<category>.csv" corpora.
const UserAgentsDir = "user_agents"

// FS returns the embedded file tree.
func FS() fs.FS { return files }

// UserAgents returns the corpus directory as its own file system.
func UserAgents() fs.FS {
	sub, err := fs.Sub(files, UserAgentsDir)
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return sub
}

var (
	chromeVersions  = sync.OnceValue(func() []string { return mustReadLines("chrome/versions.txt") })
	firefoxVersions = sync.OnceValue(func() []string { return mustReadLines("firefox/versions.txt") })
	firefoxLangs    = sync.OnceValue(func() []string { return mustReadLines("firefox/langs.txt") })
	androidDevices  = sync.OnceValue(func() []string { return mustReadLines("android/devices.txt") })
)

// ChromeVersions returns known Chrome versions, newest first.
func ChromeVersions() []string { return clone(chromeVersions()) }

// FirefoxVersions returns known Firefox versions, newest first.
func FirefoxVersions() []string { return clone(firefoxVersions()) }

// FirefoxLangs returns language tags Firefox puts in its Linux User-Agent.
func FirefoxLangs() []string { return clone(firefoxLangs()) }

// AndroidDevices returns known Android device model names.
func AndroidDevices() []string { return clone(androidDevices()) }

// ReadLines reads a newline-delimited word list, skipping blank lines.
func ReadLines(fsys fs.FS, name string) ([]string, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		if line := bytes.TrimSpace(sc.Bytes()); len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines, sc.Err()
}

func mustReadLines(name string) []string {
	lines, err := ReadLines(files, name)
	if err != nil {
		panic(err)
	}
	return lines
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
