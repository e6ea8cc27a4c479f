package csv

import (
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Source satisfies the housekit.Source interface for CSV data. Each data line
// of a CSV file is returned by a call to Record as a map[string]string where
// the keys are taken from the file's header line. Source is safe for
// concurrent use.
//
// The Source takes care of retrying failed reads/downloads and making sure
// not to return duplicate data.
//
// Consumers must call Record until it returns io.EOF, even after a record
// error. Abandoning a Source early leaves its fetch goroutines blocked
// sending records nobody will receive.
type Source struct {
	files       []*file
	maxRetries  int
	concurrency int

	records chan record

	mu     sync.Mutex
	header []string
}

// NewSource creates a housekit.Source for CSV data. The source of the raw
// data can be set by using Options defined in this package. e.g.
//
// src := NewSource(WithURLs([]string{"myfile1.csv", "http://example.com/myfile2.csv"}))
func NewSource(options ...Option) *Source {
	src := &Source{
		records:     make(chan record),
		maxRetries:  3,
		concurrency: 1,
	}

	for _, opt := range options {
		opt(src)
	}
	go src.getRecords()
	return src
}

// Option is a functional option to pass to NewSource.
type Option func(*Source)

// WithURLs returns an Option which adds the slice of URLs to the set of data
// sources a Source will read from. The URLs may be HTTP or local files.
func WithURLs(urls []string) Option {
	return func(s *Source) {
		for _, url := range urls {
			s.files = append(s.files, &file{OpenStringer: urlOpener(url)})
		}
	}
}

// WithOpenStringers returns an Option which adds the slice of OpenStringers
// to the set of data sources a Source will read from.
func WithOpenStringers(os []OpenStringer) Option {
	return func(s *Source) {
		for _, os := range os {
			s.files = append(s.files, &file{OpenStringer: os})
		}
	}
}

// WithMaxRetries returns an Option which sets the max number of retries per
// file on a Source.
func WithMaxRetries(maxRetries int) Option {
	return func(s *Source) {
		s.maxRetries = maxRetries
	}
}

// WithConcurrency returns an Option which sets the number of goroutines
// fetching files simultaneously.
func WithConcurrency(c int) Option {
	return func(s *Source) {
		if c > 0 {
			s.concurrency = c
		}
	}
}

// file tracks the use of an OpenStringer.
type file struct {
	OpenStringer
	line int // tracks how many lines of this file we've read.
}

// Opener is an interface to a resource which can be repeatedly Opened (and
// the returned ReadCloser can be subsequently read). Each call to Open should
// return a ReadCloser which reads from the beginning of the resource. In the
// case of an error while reading, Open will be called again to retry reading
// the entire resource.
type Opener interface {
	Open() (io.ReadCloser, error)
}

// OpenStringer is an Opener which also has a String method which should
// return the name of the resource being opened (e.g. a file or URL).
type OpenStringer interface {
	Opener
	String() string
}

// urlOpener turns a URL or file (string) into an OpenStringer.
type urlOpener string

func (u urlOpener) Open() (io.ReadCloser, error) {
	url := string(u)
	var content io.ReadCloser
	if strings.HasPrefix(url, "http") {
		resp, err := http.Get(url)
		if err != nil {
			return nil, errors.Wrap(err, "getting via http")
		}
		content = resp.Body
	} else {
		f, err := os.Open(url)
		if err != nil {
			return nil, errors.Wrap(err, "opening file")
		}
		content = f
	}
	return content, nil
}

func (u urlOpener) String() string {
	return string(u)
}

// Record returns a map[string]string representing a single data line of a CSV
// file. Each key is taken from the header, and each value is taken from a row
// - empty fields are skipped. Record returns io.EOF once all files are
// exhausted.
func (c *Source) Record() (map[string]string, error) {
	rec, ok := <-c.records
	if !ok {
		return nil, io.EOF
	}
	return rec.rec, rec.err
}

// Header returns the header of the first file a header has been read from.
// It is only guaranteed to be populated once Record has returned at least one
// record.
func (c *Source) Header() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	header := make([]string, len(c.header))
	copy(header, c.header)
	return header
}

func (c *Source) setHeader(header []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.header == nil {
		c.header = header
		return nil
	}
	if len(c.header) != len(header) {
		return errors.Errorf("header mismatch across files: %v and %v", c.header, header)
	}
	for i, h := range c.header {
		if header[i] != h {
			return errors.Errorf("header mismatch across files: %v and %v", c.header, header)
		}
	}
	return nil
}

type record struct {
	rec map[string]string
	err error
}

func (c *Source) getRecords() {
	fileChan := make(chan *file, c.concurrency)
	wg := sync.WaitGroup{}
	for i := 0; i < c.concurrency; i++ {
		wg.Add(1)
		go func() {
			for file := range fileChan {
				c.getRows(file)
			}
			wg.Done()
		}()
	}
	for _, file := range c.files {
		fileChan <- file
	}
	close(fileChan)
	wg.Wait()
	close(c.records)
}

func (c *Source) getRows(file *file) {
	var err error
	for try := 0; try < c.maxRetries; try++ {
		err = c.getRowTry(file)
		if err == nil {
			return
		}
	}
	c.records <- record{err: errors.Wrapf(err, "couldn't fetch '%s' - tried %d times, latest", file, c.maxRetries)}
}

func (c *Source) getRowTry(file *file) error {
	content, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "opening")
	}
	defer content.Close()

	reader := csv.NewReader(content)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "reading header of '%s'", file)
	}
	if err := validateHeader(header); err != nil {
		c.records <- record{err: errors.Wrapf(err, "validating header of %s", file)}
		return nil // error is permanent so we don't return to getRows for retry
	}
	if err := c.setHeader(header); err != nil {
		c.records <- record{err: errors.Wrapf(err, "%s", file)}
		return nil
	}
	if file.line == 0 {
		file.line++
	}
	line := 1
	// catch up to previous location
	for line < file.line {
		if _, err := reader.Read(); err != nil {
			return errors.Wrapf(err, "catching up in '%s', line %d", file, line)
		}
		line++
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if _, ok := err.(*csv.ParseError); ok {
			// malformed line - report it and keep going, the rest of the
			// file is still good
			file.line++
			c.records <- record{err: errors.Wrapf(err, "file %s: line %d", file, file.line)}
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "reading '%s', line %d", file, file.line)
		}
		file.line++
		recordMap, err := parseRecord(header, row)
		if err != nil {
			c.records <- record{
				err: errors.Wrapf(err, "file %s: parsing line %d", file, file.line),
			}
			continue
		}
		c.records <- record{
			rec: recordMap,
		}
	}
}

func parseRecord(header []string, row []string) (map[string]string, error) {
	if len(header) != len(row) {
		return nil, errors.Errorf("header/row len mismatch: %dvs%d, %v and %v", len(header), len(row), header, row)
	}
	ret := make(map[string]string, len(header))
	for i := 0; i < len(header); i++ {
		if row[i] == "" {
			continue
		}
		ret[header[i]] = row[i]
	}
	return ret, nil
}

func validateHeader(header []string) error {
	fields := make(map[string]int)
	for i, h := range header {
		if h == "" {
			return errors.Errorf("header contains empty string at %d: %v", i, header)
		}
		if pos, exists := fields[h]; exists {
			return errors.Errorf("%s appeared at both %d and %d in header", h, pos, i)
		}
		fields[h] = i
	}
	return nil
}
