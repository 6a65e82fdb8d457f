// Package tests locates, and downloads on first use, the external test suites
// used by the package tests: the nes-test-roms collection and the Tom Harte
// (SingleStepTests) nes6502 processor tests.
//
// Tests depending on them are skipped in -short mode, or when the download
// fails, for example when offline.
package tests

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

func decompress(zipFile, dest string) error {
	r, err := zip.OpenReader(zipFile)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		fname := strings.Replace(f.Name, "nes-test-roms-master", "nes-test-roms", 1)
		fpath := filepath.Join(dest, fname)
		if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
			return fmt.Errorf("%s: illegal file path", fpath)
		}

		if f.FileInfo().IsDir() {
			os.MkdirAll(fpath, os.ModePerm)
			continue
		}

		if err = os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
			return err
		}

		rc, err := f.Open()
		if err != nil {
			return err
		}

		outFile, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
		if err != nil {
			rc.Close()
			return err
		}

		_, err = io.Copy(outFile, rc)

		outFile.Close()
		rc.Close()

		if err != nil {
			return err
		}
	}

	log.Println("decompressed", len(r.File), "files")
	return nil
}

func get(url string) (io.ReadCloser, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

func downloadTestRoms(dest string) error {
	const url = `https://github.com/christopherpow/nes-test-roms/archive/refs/heads/master.zip`
	body, err := get(url)
	if err != nil {
		return err
	}
	defer body.Close()

	tmpf, err := os.CreateTemp("", "nes-test-roms-*-.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmpf.Name())
	defer tmpf.Close()

	if _, err := io.Copy(tmpf, body); err != nil {
		return err
	}

	if err := decompress(tmpf.Name(), dest); err != nil {
		return fmt.Errorf("failed to decompress test roms: %w", err)
	}
	return nil
}

func testsDir() string {
	_, b, _, _ := runtime.Caller(0)
	return filepath.Dir(b)
}

var romsOnce = sync.OnceValues(func() (string, error) {
	romsDir := filepath.Join(testsDir(), "nes-test-roms")
	if _, err := os.Stat(romsDir); errors.Is(err, fs.ErrNotExist) {
		log.Println("nes-test-roms directory not found, downloading it...")
		if err := downloadTestRoms(testsDir()); err != nil {
			return "", err
		}
		log.Println("test roms downloaded in", romsDir)
	}
	return romsDir, nil
})

// RomsPath returns the directory of the nes-test-roms collection.
func RomsPath(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping test depending on nes-test-roms in short mode")
	}
	dir, err := romsOnce()
	if err != nil {
		tb.Skipf("nes-test-roms not available: %s", err)
	}
	return dir
}

// download all 256 (one per opcode) Tom harte 6502 test files into dest dir.
func downloadTomHarteProcTests(dest string) error {
	const urlfmt = `https://raw.githubusercontent.com/SingleStepTests/65x02/main/nes6502/v1/%s.json`

	tempdir, err := os.MkdirTemp("", "tom.harte.processor.tests.*")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for opcode := range 256 {
		opstr := fmt.Sprintf("%02x", opcode)
		url := fmt.Sprintf(urlfmt, opstr)

		g.Go(func() error {
			body, err := get(url)
			if err != nil {
				return err
			}
			defer body.Close()

			f, err := os.Create(filepath.Join(tempdir, opstr+".json"))
			if err != nil {
				return err
			}
			defer f.Close()

			_, err = io.Copy(f, body)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		os.RemoveAll(tempdir)
		return fmt.Errorf("failed to download all files: %w", err)
	}

	return os.Rename(tempdir, dest)
}

var harteOnce = sync.OnceValues(func() (string, error) {
	dir := filepath.Join(testsDir(), "tomharte.processor.tests")
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Println("tomharte.processor.tests directory not found, downloading it...")
		if err := downloadTomHarteProcTests(dir); err != nil {
			return "", err
		}
		log.Println("Tom Harte processor tests downloaded in", dir)
	}
	return dir, nil
})

// TomHarteProcTestsPath returns the directory holding the nes6502 processor
// tests, one <opcode>.json file per opcode.
func TomHarteProcTestsPath(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping processor tests in short mode")
	}
	dir, err := harteOnce()
	if err != nil {
		tb.Skipf("processor tests not available: %s", err)
	}
	return dir
}
