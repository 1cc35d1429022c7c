package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
)

// Page geometry and gallery limits, in millimeters on A4.
const (
	pageMargin     = 15.0
	footerReserve  = 20.0
	galleryGutter  = 6.0
	galleryMaxImgH = 70.0
	captionHeight  = 5.0
	fieldLabelW    = 45.0
)

// ResolutionPDFRenderer renders decision snapshots as A4 PDFs: header band
// with generation timestamp, colored status badge, applicant block, wrapped
// supervisor note, two-column image gallery, table of remaining attachments,
// a diagonal REJECTED watermark on rejections and Page X of Y footers.

type ResolutionPDFRenderer struct{}

var _ interfaces.IResolutionRenderer = (*ResolutionPDFRenderer)(nil)

func NewResolutionPDFRenderer() *ResolutionPDFRenderer {
	return &ResolutionPDFRenderer{}
}

func (r *ResolutionPDFRenderer) Render(_ context.Context, data interfaces.ResolutionRenderData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerReserve)
	pdf.AliasNbPages("")

	rejected := data.Decision == entities.StatusRejected
	pdf.SetHeaderFunc(func() {
		if rejected {
			drawWatermark(pdf)
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})
	pdf.AddPage()

	drawHeaderBand(pdf, data)
	drawStatusBadge(pdf, data.Decision)
	drawApplicantBlock(pdf, data.Application)
	drawNoteBlock(pdf, data)

	images, others := splitAttachments(data.Attachments)
	drawImageGallery(pdf, images)
	drawAttachmentTable(pdf, others)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering resolution pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawWatermark(pdf *gofpdf.Fpdf) {
	pageW, pageH := pdf.GetPageSize()
	pdf.SetFont("Helvetica", "B", 72)
	pdf.SetTextColor(200, 60, 60)
	pdf.SetAlpha(0.08, "Normal")
	pdf.TransformBegin()
	pdf.TransformRotate(45, pageW/2, pageH/2)
	pdf.Text(pageW/2-55, pageH/2, "REJECTED")
	pdf.TransformEnd()
	pdf.SetAlpha(1.0, "Normal")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pageMargin, pageMargin)
}

func drawHeaderBand(pdf *gofpdf.Fpdf, data interfaces.ResolutionRenderData) {
	pdf.SetFillColor(32, 56, 100)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Installation Service Resolution", "", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	subtitle := fmt.Sprintf("Version %d - generated %s", data.Version, data.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	pdf.CellFormat(0, 7, subtitle, "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func drawStatusBadge(pdf *gofpdf.Fpdf, decision entities.ApplicationStatus) {
	label := "APPROVED"
	pdf.SetFillColor(46, 125, 50)
	if decision == entities.StatusRejected {
		label = "REJECTED"
		pdf.SetFillColor(183, 28, 28)
	}
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(50, 10, label, "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func drawApplicantBlock(pdf *gofpdf.Fpdf, app entities.Application) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Applicant", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	stratum := ""
	if app.Stratum > 0 {
		stratum = strconv.Itoa(app.Stratum)
	}
	fields := []struct {
		label string
		value string
	}{
		{"Name", app.ApplicantName},
		{"Document", app.ApplicantDocument},
		{"Phone", app.ContactPhone},
		{"Address", app.Address},
		{"Locality code", app.LocalityCode},
		{"Stratum", stratum},
		{"Technician", app.TechnicianID},
		{"Supervisor", app.SupervisorID},
	}
	for _, f := range fields {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(fieldLabelW, 6, f.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, orDash(f.value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func drawNoteBlock(pdf *gofpdf.Fpdf, data interfaces.ResolutionRenderData) {
	note := strings.TrimSpace(data.Note)
	if note == "" {
		return
	}
	title := "Supervisor comment"
	if data.Decision == entities.StatusRejected {
		title = "Rejection reason"
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5.5, note, "", "L", false)
	pdf.Ln(4)
}

// galleryImage is an attachment that survived decoding.
type galleryImage struct {
	att     interfaces.RenderAttachment
	imgType string
	width   int
	height  int
}

// splitAttachments partitions attachments into gallery images and table rows.
// Image attachments whose bytes are missing or undecodable are dropped from
// the gallery entirely.
func splitAttachments(atts []interfaces.RenderAttachment) ([]galleryImage, []interfaces.RenderAttachment) {
	var images []galleryImage
	var others []interfaces.RenderAttachment
	for _, a := range atts {
		t := imageTypeForName(a.FileName)
		if t == "" {
			others = append(others, a)
			continue
		}
		if len(a.Data) == 0 {
			continue
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(a.Data))
		if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
			continue
		}
		images = append(images, galleryImage{att: a, imgType: t, width: cfg.Width, height: cfg.Height})
	}
	return images, others
}

func drawImageGallery(pdf *gofpdf.Fpdf, images []galleryImage) {
	if len(images) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Photographic evidence", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin
	colW := (contentW - galleryGutter) / 2
	maxY := pageH - footerReserve

	y := pdf.GetY()
	col := 0
	rowH := 0.0
	for i, img := range images {
		w := colW
		h := w * float64(img.height) / float64(img.width)
		if h > galleryMaxImgH {
			h = galleryMaxImgH
			w = h * float64(img.width) / float64(img.height)
		}
		cellH := h + captionHeight + 3

		if col == 1 && y+cellH > maxY {
			col = 0
			y += rowH
			rowH = 0
		}
		if col == 0 && y+cellH > maxY {
			pdf.AddPage()
			y = pdf.GetY()
			rowH = 0
		}

		x := pageMargin + float64(col)*(colW+galleryGutter)
		name := fmt.Sprintf("gallery-%d", i)
		opts := gofpdf.ImageOptions{ImageType: img.imgType}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.att.Data))
		pdf.ImageOptions(name, x+(colW-w)/2, y, w, h, false, opts, 0, "")

		caption := img.att.Kind
		if caption == "" {
			caption = img.att.FileName
		}
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetXY(x, y+h+1)
		pdf.CellFormat(colW, captionHeight, caption, "", 0, "C", false, 0, "")

		if cellH > rowH {
			rowH = cellH
		}
		col++
		if col == 2 {
			col = 0
			y += rowH
			rowH = 0
		}
	}
	if col != 0 {
		y += rowH
	}
	pdf.SetXY(pageMargin, y+4)
}

func drawAttachmentTable(pdf *gofpdf.Fpdf, atts []interfaces.RenderAttachment) {
	if len(atts) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Other attachments", "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	kindW := 60.0
	nameW := pageW - 2*pageMargin - kindW

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(225, 225, 225)
	pdf.CellFormat(kindW, 7, "Kind", "1", 0, "L", true, 0, "")
	pdf.CellFormat(nameW, 7, "File name", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(243, 243, 243)
	for i, a := range atts {
		shade := i%2 == 1
		pdf.CellFormat(kindW, 6.5, orDash(a.Kind), "1", 0, "L", shade, 0, "")
		pdf.CellFormat(nameW, 6.5, orDash(a.FileName), "1", 1, "L", shade, 0, "")
	}
	pdf.Ln(2)
}

func imageTypeForName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".png":
		return "PNG"
	case ".gif":
		return "GIF"
	}
	return ""
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
