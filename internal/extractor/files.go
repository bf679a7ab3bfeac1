package extractor

import (
	"strings"

	"caseview/internal/model"
)

type fileRule struct {
	category model.Category
	exact    []string
	contains string
}

func (r fileRule) match(tag string) bool {
	if r.contains != "" {
		return strings.Contains(tag, r.contains)
	}
	for _, e := range r.exact {
		if tag == e {
			return true
		}
	}
	return false
}

// Rules are evaluated independently; a tag may land in several buckets.
var fileRules = []fileRule{
	{category: model.FilesImage, exact: []string{"image", "pictures", "live photos"}},
	{category: model.FilesAudio, exact: []string{"audio"}},
	{category: model.FilesText, contains: "text"},
	{category: model.FilesPDF, contains: "pdf"},
	{category: model.FilesRTF, contains: "rtf"},
	{category: model.FilesWord, contains: "word"},
	{category: model.FilesVideo, contains: "video"},
	{category: model.FilesArchive, exact: []string{"archives"}},
	{category: model.FilesDatabase, contains: "database"},
	{category: model.FilesApplication, exact: []string{"application"}},
}

// FileCategories returns the buckets a file with the given MIME tag belongs
// to. Matching is case-insensitive.
func FileCategories(mimeType string) []model.Category {
	tag := strings.ToLower(mimeType)
	var out []model.Category
	for _, rule := range fileRules {
		if rule.match(tag) {
			out = append(out, rule.category)
		}
	}
	if len(out) == 0 {
		out = append(out, model.FilesUncategorized)
	}
	return out
}

func classifyFile(reg *model.Registry, f *Facet) {
	file := &model.File{
		ID:       f.NodeID,
		MimeType: f.String(observable("mimeType"), ""),
		Name:     f.String(observable("fileName"), ""),
		Path:     f.String(observable("filePath"), ""),
		Size:     f.Integer(observable("sizeInBytes"), "-"),
	}
	for _, c := range FileCategories(file.MimeType) {
		reg.AddFile(c, file)
	}
}
