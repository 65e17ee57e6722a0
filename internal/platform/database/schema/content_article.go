// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// ContentArticleTable represents the 'content.article' table.
type ContentArticleTable struct {
	Table     string
	ID        string
	TitleAr   string
	TitleEn   string
	SummaryAr string
	SummaryEn string
	BodyAr    string
	BodyEn    string
	Category  string
	ImageID   string
	Published string
	CreatedAt string
}

// ContentArticle is the schema definition for content.article.
var ContentArticle = ContentArticleTable{
	Table:     "content.article",
	ID:        "id",
	TitleAr:   "title_ar",
	TitleEn:   "title_en",
	SummaryAr: "summary_ar",
	SummaryEn: "summary_en",
	BodyAr:    "body_ar",
	BodyEn:    "body_en",
	Category:  "category",
	ImageID:   "image_id",
	Published: "published",
	CreatedAt: "created_at",
}

func (t ContentArticleTable) Columns() []string {
	return []string{
		t.ID, t.TitleAr, t.TitleEn, t.SummaryAr, t.SummaryEn,
		t.BodyAr, t.BodyEn, t.Category, t.ImageID, t.Published, t.CreatedAt,
	}
}
