// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package seed populates a fresh database with the content the site launches
with: the four static sections, the rotating tips, the bootstrap admin
account, and (in development) a set of demo articles, routines, and
remedies.

The pass is idempotent: sections are upserted by key, tips and demo
content are only created when their tables are empty, and the bootstrap
admin is only created when the email is unknown. Running it on every
startup is safe.
*/
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/core/section"
	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/platform/config"
	"github.com/tomabeauty/toma/internal/users/auth"
	"github.com/tomabeauty/toma/pkg/bilingual"
	"github.com/tomabeauty/toma/pkg/pointer"
	"github.com/tomabeauty/toma/pkg/uuid"
)

// Seeder wires the repositories and services the seed pass writes through.
// Content goes through the same services as the API so every seeded row
// obeys the same validation and fallback-fill rules.
type Seeder struct {
	cfg      *config.Config
	sections section.Repository
	tips     tip.Repository
	articles *article.Service
	routines *routine.Service
	remedies *remedy.Service
	auth     *auth.Service
	logger   *slog.Logger
}

func New(
	cfg *config.Config,
	sections section.Repository,
	tips tip.Repository,
	articles *article.Service,
	routines *routine.Service,
	remedies *remedy.Service,
	authService *auth.Service,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		cfg:      cfg,
		sections: sections,
		tips:     tips,
		articles: articles,
		routines: routines,
		remedies: remedies,
		auth:     authService,
		logger:   logger,
	}
}

// Run executes the full seed pass.
func (seeder *Seeder) Run(context context.Context) error {
	if seeder.cfg.AdminEmail != "" {
		if _, err := seeder.auth.EnsureAdmin(context, seeder.cfg.AdminEmail, seeder.cfg.AdminPassword, "Toma Admin"); err != nil {
			return fmt.Errorf("seed: bootstrap admin: %w", err)
		}
	}

	if err := seeder.seedSections(context); err != nil {
		return err
	}
	if err := seeder.seedTips(context); err != nil {
		return err
	}

	if seeder.cfg.SeedDemoContent {
		if err := seeder.seedDemoContent(context); err != nil {
			return err
		}
	}

	seeder.logger.Info("seed_pass_complete")
	return nil
}

// seedSections upserts the four static page blocks by key.
func (seeder *Seeder) seedSections(context context.Context) error {
	blocks := []*section.Section{
		{
			Key: section.KeyAbout,
			Title: bilingual.Text{
				Ar: "عن توما بيوتي",
				En: "About Toma Beauty",
			},
			Body: bilingual.Text{
				Ar: "توما بيوتي هي وجهتك المثالية لكل ما يتعلق بالجمال، العناية بالبشرة، والعناية الذاتية. نؤمن بأن الجمال الحقيقي ينبع من الداخل، ومهمتنا هي تمكينك من خلال روتين طبيعي وفعال وبسيط لتعزيز إشراقتك الطبيعية.",
				En: "Toma Beauty is your ultimate destination for everything related to beauty, skincare, and self-care. We believe that true beauty comes from within, and our mission is to empower you with natural, effective, and simple routines to enhance your natural glow.",
			},
			ImageURL: pointer.To("https://images.unsplash.com/photo-1596462502278-27bfdd403cc2?auto=format&fit=crop&q=80"),
		},
		{
			Key: section.KeyFounder,
			Title: bilingual.Text{
				Ar: "تعرف على المؤسسة",
				En: "Meet the Founder",
			},
			Body: bilingual.Text{
				Ar: "مؤسستنا شغوفة بالعافية الشاملة والجمال المستدام. مع سنوات من الخبرة في صناعة التجميل، أنشأت توما بيوتي لمشاركة معرفتها وإلهام النساء في كل مكان لاحتضان جمالهن الفريد.",
				En: "Our founder is passionate about holistic wellness and sustainable beauty. With years of experience in the beauty industry, she created Toma Beauty to share her knowledge and inspire women everywhere to embrace their unique beauty.",
			},
			ImageURL: pointer.To("https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?auto=format&fit=crop&q=80"),
		},
		{
			Key: section.KeyMission,
			Title: bilingual.Text{
				Ar: "مهمتنا",
				En: "Our Mission",
			},
			Body: bilingual.Text{
				Ar: "تزويد كل امرأة بالمعرفة والأدوات الطبيعية التي تحتاجها لتشعر بالثقة والجمال في بشرتها، باستخدام مكونات مستدامة وآمنة.",
				En: "To provide every woman with the knowledge and natural tools she needs to feel confident and beautiful in her own skin, using sustainable and safe ingredients.",
			},
			ImageURL: pointer.To("https://images.unsplash.com/photo-1540555700478-4be289fbecef?auto=format&fit=crop&q=80"),
		},
		{
			Key: section.KeyVision,
			Title: bilingual.Text{
				Ar: "رؤيتنا",
				En: "Our Vision",
			},
			Body: bilingual.Text{
				Ar: "أن نصبح المنصة العالمية الرائدة للتعليم في مجال الجمال الطبيعي، ونجمع بين الحكمة القديمة والعلم الحديث من أجل عالم أكثر صحة وجمالاً.",
				En: "To become the leading global platform for natural beauty education, bridging ancient wisdom with modern science for a healthier, more beautiful world.",
			},
			ImageURL: pointer.To("https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&q=80"),
		},
	}

	for _, block := range blocks {
		block.ID = uuid.New()
		if err := seeder.sections.UpsertSection(context, block); err != nil {
			return fmt.Errorf("seed: section %q: %w", block.Key, err)
		}
	}
	return nil
}

// seedTips creates the launch tips when the table is empty.
func (seeder *Seeder) seedTips(context context.Context) error {
	count, err := seeder.tips.Count(context)
	if err != nil {
		return fmt.Errorf("seed: tip count: %w", err)
	}
	if count > 0 {
		return nil
	}

	launchTips := []bilingual.Text{
		{
			Ar: "ضعي واقي الشمس دائمًا، حتى في الأيام الغائمة!",
			En: "Always apply sunscreen, even on cloudy days!",
		},
		{
			Ar: "اشربي ما لا يقل عن 2 لتر من الماء يوميًا لبشرة صافية.",
			En: "Drink at least 2 liters of water daily for clear skin.",
		},
	}

	for _, body := range launchTips {
		if err := seeder.tips.CreateTip(context, &tip.Tip{ID: uuid.New(), Body: body}); err != nil {
			return fmt.Errorf("seed: tip: %w", err)
		}
	}
	return nil
}

// seedDemoContent fills empty catalog tables with the launch content.
// Demo articles carry no image URL: the seed pass must not depend on
// external image hosts being reachable.
func (seeder *Seeder) seedDemoContent(context context.Context) error {
	if _, total, err := seeder.articles.ListArticles(context, article.Filter{}, 1, 0); err != nil {
		return fmt.Errorf("seed: article probe: %w", err)
	} else if total == 0 {
		for _, input := range demoArticles() {
			if _, err := seeder.articles.CreateArticle(context, input); err != nil {
				return fmt.Errorf("seed: article: %w", err)
			}
		}
	}

	if _, total, err := seeder.routines.ListRoutines(context, routine.Filter{}, 1, 0); err != nil {
		return fmt.Errorf("seed: routine probe: %w", err)
	} else if total == 0 {
		for _, input := range demoRoutines() {
			if _, err := seeder.routines.CreateRoutine(context, input); err != nil {
				return fmt.Errorf("seed: routine: %w", err)
			}
		}
	}

	if _, total, err := seeder.remedies.ListRemedies(context, 1, 0); err != nil {
		return fmt.Errorf("seed: remedy probe: %w", err)
	} else if total == 0 {
		for _, input := range demoRemedies() {
			if _, err := seeder.remedies.CreateRemedy(context, input); err != nil {
				return fmt.Errorf("seed: remedy: %w", err)
			}
		}
	}

	return nil
}
