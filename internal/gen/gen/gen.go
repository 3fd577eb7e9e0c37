// Package gen fetches the Unicode Character Database files consumed by
// table generation, caching them under a local data directory.
package gen

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

var (
	unicodeVersion = flag.String("unicode", "14.0.0",
		"Unicode version the tables are generated from")
	ucdURL = flag.String("url", "https://www.unicode.org/Public/",
		"URL of the Unicode Public directory")
	dataDir = flag.String("data", ".data",
		"directory UCD files are cached in, relative to the working directory")
)

// UnicodeVersion returns the Unicode version set by the -unicode flag.
func UnicodeVersion() string {
	return *unicodeVersion
}

// OpenUCDFile returns the named UCD file for the configured Unicode
// version, downloading it into the cache directory if not already present.
func OpenUCDFile(name string) (io.ReadCloser, error) {
	path := filepath.Join(*dataDir, UnicodeVersion(), name)
	if _, err := os.Stat(path); err == nil {
		return os.Open(path)
	}
	url := fmt.Sprintf("%s%s/ucd/%s", *ucdURL, UnicodeVersion(), name)
	if err := download(path, url); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// download fetches url to path via a temp file so that an interrupted
// download never leaves a truncated file in the cache.
func download(path, url string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	res, err := http.Get(url)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("gen: get %q: %s", url, res.Status)
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.DefaultBytes(res.ContentLength, filepath.Base(path))
	} else {
		bar = progressbar.DefaultBytesSilent(res.ContentLength)
	}
	defer bar.Close()

	if _, err := io.Copy(io.MultiWriter(f, bar), res.Body); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}
