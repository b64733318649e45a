// Command export renders a resume JSON file to PDF without the server:
//
//	export -in resume.json -template modern -out resume.pdf
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"resume-builder/internal/model"
	"resume-builder/internal/template"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	in := flag.String("in", "resume.json", "path to resume document JSON")
	tplID := flag.String("template", "modern", "template id (modern|minimal|classic|creative|executive)")
	out := flag.String("out", "resume.pdf", "output PDF path")
	title := flag.String("title", usecase.DefaultTitle, "document title")
	flag.Parse()

	body, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	if err := model.ValidateJSON(body); err != nil {
		log.Fatalf("invalid document: %v", err)
	}
	var doc model.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}
	doc.Normalize()

	html, err := template.Render(*tplID, doc, "")
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	printDoc := usecase.BuildPrintDocument(html, *title)
	pdf, err := infra.NewChromedpSink().Render(context.Background(), printDoc)
	if err != nil {
		log.Fatalf("pdf: %v", err)
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(pdf))
}
