package report

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "hubver/pkg/errors"
)

// SheetName is the worksheet that receives the export.
const SheetName = "Collections Ansible versions"

// Options configures a workbook export.
type Options struct {
	Path           string // destination file
	IncludeAuthors bool   // add the Authors column
	ClearExisting  bool   // remove an existing file at Path before writing
}

// Row is one workbook line, corresponding to one walked collection.
type Row struct {
	Name      string   // fully qualified collection name
	Channel   string   // content channel ("validated" or "certified")
	Version   string   // minimum runtime version, "major.minor"
	Downloads int      // lifetime download count
	Authors   []string // authors, written comma-separated
}

// Workbook writes collections to an xlsx worksheet, one row per
// collection in append order. The header row is always present, even
// when no rows follow it.
type Workbook struct {
	file           *excelize.File
	path           string
	includeAuthors bool
	row            int
}

// NewWorkbook creates a workbook at opts.Path with the header row in
// place. With ClearExisting set, a pre-existing file at the
// destination is removed first; a missing file is not an error, any
// other removal failure is fatal.
func NewWorkbook(opts Options) (*Workbook, error) {
	if opts.ClearExisting {
		if err := os.Remove(opts.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFilesystem, err, "remove existing workbook %s", opts.Path)
		}
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "create worksheet")
	}

	header := []any{"Collection Name", "Repository", "Ansible Version", "Downloads"}
	if opts.IncludeAuthors {
		header = append(header, "Authors")
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "write header row")
	}

	return &Workbook{
		file:           f,
		path:           opts.Path,
		includeAuthors: opts.IncludeAuthors,
		row:            2,
	}, nil
}

// Append writes r as the next data row.
// Downloads are written as strings to match the rest of the sheet.
func (w *Workbook) Append(r Row) error {
	values := []any{r.Name, r.Channel, r.Version, strconv.Itoa(r.Downloads)}
	if w.includeAuthors {
		values = append(values, strings.Join(r.Authors, ", "))
	}

	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "compute cell for row %d", w.row)
	}
	if err := w.file.SetSheetRow(SheetName, cell, &values); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write row for %s", r.Name)
	}
	w.row++
	return nil
}

// Save writes the workbook to its destination path.
func (w *Workbook) Save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeFilesystem, err, "save workbook %s", w.path)
	}
	return w.file.Close()
}
