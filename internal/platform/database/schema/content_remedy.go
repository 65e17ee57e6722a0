// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// ContentRemedyTable represents the 'content.remedy' table.
type ContentRemedyTable struct {
	Table          string
	ID             string
	TitleAr        string
	TitleEn        string
	DescriptionAr  string
	DescriptionEn  string
	InstructionsAr string
	InstructionsEn string
	CreatedAt      string
}

// ContentRemedy is the schema definition for content.remedy.
var ContentRemedy = ContentRemedyTable{
	Table:          "content.remedy",
	ID:             "id",
	TitleAr:        "title_ar",
	TitleEn:        "title_en",
	DescriptionAr:  "description_ar",
	DescriptionEn:  "description_en",
	InstructionsAr: "instructions_ar",
	InstructionsEn: "instructions_en",
	CreatedAt:      "created_at",
}

func (t ContentRemedyTable) Columns() []string {
	return []string{
		t.ID, t.TitleAr, t.TitleEn, t.DescriptionAr, t.DescriptionEn,
		t.InstructionsAr, t.InstructionsEn, t.CreatedAt,
	}
}

// ContentRemedyIngredientTable represents the 'content.remedy_ingredient'
// table, the ordered child rows of a remedy.
type ContentRemedyIngredientTable struct {
	Table    string
	ID       string
	RemedyID string
	Position string
	NameAr   string
	NameEn   string
}

// ContentRemedyIngredient is the schema definition for content.remedy_ingredient.
var ContentRemedyIngredient = ContentRemedyIngredientTable{
	Table:    "content.remedy_ingredient",
	ID:       "id",
	RemedyID: "remedy_id",
	Position: "position",
	NameAr:   "name_ar",
	NameEn:   "name_en",
}

func (t ContentRemedyIngredientTable) Columns() []string {
	return []string{t.ID, t.RemedyID, t.Position, t.NameAr, t.NameEn}
}
