// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// ContentSectionTable represents the 'content.section' table, the static
// bilingual page blocks (about, founder, mission, vision).
type ContentSectionTable struct {
	Table     string
	ID        string
	Key       string
	TitleAr   string
	TitleEn   string
	BodyAr    string
	BodyEn    string
	ImageURL  string
	CreatedAt string
}

// ContentSection is the schema definition for content.section.
var ContentSection = ContentSectionTable{
	Table:     "content.section",
	ID:        "id",
	Key:       "key",
	TitleAr:   "title_ar",
	TitleEn:   "title_en",
	BodyAr:    "body_ar",
	BodyEn:    "body_en",
	ImageURL:  "image_url",
	CreatedAt: "created_at",
}

func (t ContentSectionTable) Columns() []string {
	return []string{
		t.ID, t.Key, t.TitleAr, t.TitleEn, t.BodyAr, t.BodyEn, t.ImageURL, t.CreatedAt,
	}
}

// ContentTipTable represents the 'content.tip' table, rotating beauty tips.
type ContentTipTable struct {
	Table     string
	ID        string
	BodyAr    string
	BodyEn    string
	CreatedAt string
}

// ContentTip is the schema definition for content.tip.
var ContentTip = ContentTipTable{
	Table:     "content.tip",
	ID:        "id",
	BodyAr:    "body_ar",
	BodyEn:    "body_en",
	CreatedAt: "created_at",
}

func (t ContentTipTable) Columns() []string {
	return []string{t.ID, t.BodyAr, t.BodyEn, t.CreatedAt}
}
