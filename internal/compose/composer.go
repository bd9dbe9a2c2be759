package compose

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/MKhiriev/automailer/internal/logger"
)

//go:generate mockgen -source=composer.go -destination=../mock/composer_mock.go -package=mock

// The date stamp sits 90pt in from the right edge and 80pt up from the
// bottom, over the template's date line.
const coverStampFormat = "fontname:Helvetica, points:9, scalefactor:1 abs, rotation:0, position:br, offset:-90 80"

// DocumentComposer produces one mailable document from one fetched statement.
type DocumentComposer interface {
	Compose(ctx context.Context, statement []byte) ([]byte, error)
}

// Composer implements [DocumentComposer] on top of a cover-page template.
// The clock is injectable so the stamped date is deterministic under test.
type Composer struct {
	templatePath string
	now          func() time.Time
	logger       *logger.Logger
}

// New returns a Composer using the template at templatePath, or the built-in
// cover page when templatePath is empty.
func New(templatePath string, log *logger.Logger) *Composer {
	return &Composer{
		templatePath: templatePath,
		now:          time.Now,
		logger:       log,
	}
}

// Compose stamps the cover page with today's date and merges it with the
// statement document, cover first.
func (c *Composer) Compose(ctx context.Context, statement []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	log.Debug().Msg("creating cover page")
	cover, err := c.CoverPage()
	if err != nil {
		return nil, err
	}

	log.Debug().Msg("merging documents")
	return c.Merge(cover, statement)
}

// CoverPage loads the template and stamps the current date onto its first
// page.
func (c *Composer) CoverPage() ([]byte, error) {
	template, err := c.loadTemplate()
	if err != nil {
		return nil, err
	}
	return c.StampTemplate(template)
}

// StampTemplate draws the current date (M/D/YYYY, local clock) onto the first
// page of template and returns the serialized result. The page count and all
// other content are unchanged.
func (c *Composer) StampTemplate(template []byte) ([]byte, error) {
	wm, err := api.TextWatermark(c.dateString(), coverStampFormat, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("%w: build date stamp: %v", ErrDocument, err)
	}

	var buf bytes.Buffer
	if err = api.AddWatermarks(bytes.NewReader(template), &buf, []string{"1"}, wm, nil); err != nil {
		return nil, fmt.Errorf("%w: stamp template: %v", ErrDocument, err)
	}

	return buf.Bytes(), nil
}

// Merge appends the pages of every input document, in input order, into one
// new document and returns its serialized bytes. Inputs may have differing
// page counts and page geometry. Merging no documents yields a valid document
// with a single blank page.
func (c *Composer) Merge(docs ...[]byte) ([]byte, error) {
	if len(docs) == 0 {
		return blankDocument()
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i := range docs {
		readers[i] = bytes.NewReader(docs[i])
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, nil); err != nil {
		return nil, fmt.Errorf("%w: merge documents: %v", ErrDocument, err)
	}

	return buf.Bytes(), nil
}

func (c *Composer) loadTemplate() ([]byte, error) {
	if c.templatePath == "" {
		return defaultCover()
	}

	template, err := os.ReadFile(c.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read template %s: %v", ErrDocument, c.templatePath, err)
	}
	return template, nil
}

// dateString renders the stamp date the way the template expects it:
// M/D/YYYY without zero padding.
func (c *Composer) dateString() string {
	now := c.now()
	return fmt.Sprintf("%d/%d/%d", int(now.Month()), now.Day(), now.Year())
}
