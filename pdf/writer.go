package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strconv"
)

// Bytes serializes the document to a complete PDF 1.7 file. Output depends
// only on the drawing calls and the info dictionary, so identical documents
// serialize to identical bytes.
func (b *Builder) Bytes() ([]byte, error) {
	if len(b.pages) == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	var objects [][]byte // objects[i] is object number i+1
	addObject := func(body []byte) int {
		objects = append(objects, body)
		return len(objects)
	}

	fontNum := func(res string) int {
		if res == "F2" {
			return 4
		}
		return 3
	}

	// Fixed leading objects: catalog, page tree, the two fonts. Their
	// bodies reference page objects allocated afterward, so they are
	// filled in below once page numbers are known.
	addObject(nil) // 1: catalog
	addObject(nil) // 2: pages
	addObject(fontObject("Helvetica"))
	addObject(fontObject("Helvetica-Bold"))

	pageNums := make([]int, 0, len(b.pages))
	for _, page := range b.pages {
		// Image XObjects, in draw order.
		imageNums := make([]int, len(page.images))
		for i, img := range page.images {
			maskNum := 0
			if img.Alpha != nil {
				body, err := imageStream(img.Width, img.Height, "DeviceGray", img.Alpha, 0)
				if err != nil {
					return nil, err
				}
				maskNum = addObject(body)
			}
			body, err := imageStream(img.Width, img.Height, "DeviceRGB", img.Data, maskNum)
			if err != nil {
				return nil, err
			}
			imageNums[i] = addObject(body)
		}

		compressed, err := flateCompress(page.content.Bytes())
		if err != nil {
			return nil, fmt.Errorf("compress page content: %w", err)
		}
		var cs bytes.Buffer
		fmt.Fprintf(&cs, "<< /Length %d /Filter /FlateDecode >>\nstream\n", len(compressed))
		cs.Write(compressed)
		cs.WriteString("\nendstream")
		contentNum := addObject(cs.Bytes())

		var pg bytes.Buffer
		fmt.Fprintf(&pg, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %s %s] /Contents %d 0 R ",
			ftoa(page.Width), ftoa(page.Height), contentNum)
		pg.WriteString("/Resources << /Font << ")
		for _, res := range []string{"F1", "F2"} {
			if page.fonts[res] {
				fmt.Fprintf(&pg, "/%s %d 0 R ", res, fontNum(res))
			}
		}
		pg.WriteString(">> ")
		if len(imageNums) > 0 {
			pg.WriteString("/XObject << ")
			for i, num := range imageNums {
				fmt.Fprintf(&pg, "/%s %d 0 R ", imageName(i), num)
			}
			pg.WriteString(">> ")
		}
		pg.WriteString(">> >>")
		pageNums = append(pageNums, addObject(pg.Bytes()))
	}

	var kids bytes.Buffer
	kids.WriteString("<< /Type /Pages /Count " + strconv.Itoa(len(pageNums)) + " /Kids [")
	for i, num := range pageNums {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", num)
	}
	kids.WriteString("] >>")
	objects[1] = kids.Bytes()
	objects[0] = []byte("<< /Type /Catalog /Pages 2 0 R >>")

	infoNum := 0
	if body := infoObject(b.info); body != nil {
		infoNum = addObject(body)
	}

	// File assembly: header, bodies, xref, trailer.
	var out bytes.Buffer
	out.WriteString("%PDF-1.7\n%\xE2\xE3\xCF\xD3\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n", i+1)
		out.Write(body)
		out.WriteString("\nendobj\n")
	}

	xrefOffset := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R", len(objects)+1)
	if infoNum > 0 {
		fmt.Fprintf(&out, " /Info %d 0 R", infoNum)
	}
	fmt.Fprintf(&out, " >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)
	return out.Bytes(), nil
}

func fontObject(baseFont string) []byte {
	return []byte("<< /Type /Font /Subtype /Type1 /BaseFont /" + baseFont +
		" /Encoding /WinAnsiEncoding >>")
}

func imageStream(w, h int, colorSpace string, samples []byte, maskNum int) ([]byte, error) {
	compressed, err := flateCompress(samples)
	if err != nil {
		return nil, fmt.Errorf("compress image samples: %w", err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /%s /BitsPerComponent 8 /Filter /FlateDecode /Length %d",
		w, h, colorSpace, len(compressed))
	if maskNum > 0 {
		fmt.Fprintf(&buf, " /SMask %d 0 R", maskNum)
	}
	buf.WriteString(" >>\nstream\n")
	buf.Write(compressed)
	buf.WriteString("\nendstream")
	return buf.Bytes(), nil
}

func infoObject(info Info) []byte {
	if info == (Info{}) {
		return nil
	}
	var buf bytes.Buffer
	buf.WriteString("<<")
	writeEntry := func(key, value string) {
		if value == "" {
			return
		}
		buf.WriteString(" /" + key + " (")
		buf.Write(encodeWinAnsi(value))
		buf.WriteString(")")
	}
	writeEntry("Title", info.Title)
	writeEntry("Author", info.Author)
	writeEntry("Subject", info.Subject)
	writeEntry("Producer", info.Producer)
	if info.CreationDate != "" {
		buf.WriteString(" /CreationDate (" + info.CreationDate + ")")
	}
	buf.WriteString(" >>")
	return buf.Bytes()
}

func flateCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
