package toolbag

import (
	"io"
	"os"
	"strings"

	"github.com/l-johnston/toolbag/pkg/toolbag/container"
	"github.com/l-johnston/toolbag/pkg/toolbag/models"
	"github.com/l-johnston/toolbag/pkg/toolbag/parser"
)

// ReadTraceData reads AWR Microwave Office graph trace data: a tab-delimited
// label line followed by columns of decimal or scientific numbers.
func ReadTraceData(r io.Reader, opts Options) (*container.Container, error) {
	c, err := readTraceData(r, opts)
	if err != nil {
		return nil, NewReadError("", FormatTraceData, err)
	}
	return c, nil
}

// ReadTraceDataFile reads an AWR trace data file. See ReadTraceData.
func ReadTraceDataFile(path string, opts Options) (*container.Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewReadError(path, FormatTraceData, err)
	}
	c, err := readTraceData(f, opts)
	f.Close()
	if err != nil {
		return nil, NewReadError(path, FormatTraceData, err)
	}
	return c, nil
}

func readTraceData(r io.Reader, opts Options) (*container.Container, error) {
	b, err := parser.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text, _, err := parser.DecodeText(b)
	if err != nil {
		return nil, err
	}
	bo := opts.blockOptions("\t")
	block, err := parser.LocateBlock(parser.SplitRows(text, bo.Delimiter), parser.Scientific, bo)
	if err != nil {
		return nil, err
	}
	if block.Orientation != models.Column {
		return nil, ErrNotLabeled
	}

	header := strings.Join(block.Labels, " ")
	if block.Header != "" {
		header = block.Header + "\n" + header
	}
	return container.New(block, parser.ParseColumnLabels(block.Labels),
		container.WithRegistry(opts.registry()),
		container.WithHeader(header))
}
