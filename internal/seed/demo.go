// Copyright (c) 2026 Toma Beauty. All rights reserved.

package seed

import (
	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

// demoArticles is the launch catalog. Entries carry no image URL so the
// seed pass never depends on external image hosts.
func demoArticles() []article.CreateInput {
	return []article.CreateInput{
		{
			Title: bilingual.Text{
				Ar: "فوائد ماء الورد",
				En: "The Benefits of Rose Water",
			},
			Summary: bilingual.Text{
				Ar: "اكتشفي كيف يمكن لماء الورد أن يغير روتين العناية ببشرتك.",
				En: "Discover how rose water can transform your skincare routine.",
			},
			Body: bilingual.Text{
				Ar: "استُخدم ماء الورد لقرون في روتين الجمال. يساعد على موازنة درجة حموضة البشرة، وتهدئة الالتهابات، وترطيب البشرة بلطف. ضعيه صباحًا ومساءً بعد التنظيف للحصول على أفضل النتائج.",
				En: "Rose water has been used for centuries in beauty rituals. It helps balance the skin's pH, soothe irritation, and gently hydrate. Apply it morning and evening after cleansing for best results.",
			},
			Category:  "skincare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "سحر مقشرات الجسم بالقهوة",
				En: "The Magic of Coffee Body Scrubs",
			},
			Summary: bilingual.Text{
				Ar: "مقشر منزلي بسيط ينعش البشرة ويحسن الدورة الدموية.",
				En: "A simple homemade scrub that refreshes the skin and boosts circulation.",
			},
			Body: bilingual.Text{
				Ar: "تفل القهوة مقشر طبيعي رائع. امزجيه مع زيت جوز الهند والسكر البني، ودلكي بحركات دائرية لطيفة. الكافيين ينشط الدورة الدموية ويشد البشرة مؤقتًا.",
				En: "Used coffee grounds make a wonderful natural exfoliant. Mix them with coconut oil and brown sugar, then massage in gentle circles. The caffeine stimulates circulation and temporarily firms the skin.",
			},
			Category:  "skincare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "واقي الشمس: أفضل أداة لمكافحة الشيخوخة",
				En: "Sunscreen: Your Best Anti-Aging Tool",
			},
			Summary: bilingual.Text{
				Ar: "لماذا يعد واقي الشمس اليومي أهم خطوة في روتينك.",
				En: "Why daily sunscreen is the single most important step in your routine.",
			},
			Body: bilingual.Text{
				Ar: "حتى 90% من علامات شيخوخة البشرة المرئية سببها أشعة الشمس. استخدمي واقي شمس واسع الطيف بعامل حماية 50 كل يوم، حتى في الشتاء وفي الأيام الغائمة، وأعيدي وضعه كل ساعتين عند التعرض المباشر.",
				En: "Up to 90% of visible skin aging is caused by sun exposure. Use a broad-spectrum SPF 50 every single day, even in winter and on cloudy days, and reapply every two hours when directly exposed.",
			},
			Category:  "skincare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "باكوتشيول: الريتينول الطبيعي",
				En: "Bakuchiol: Nature's Retinol",
			},
			Summary: bilingual.Text{
				Ar: "بديل نباتي لطيف للريتينول يناسب البشرة الحساسة.",
				En: "A gentle plant-based retinol alternative suitable for sensitive skin.",
			},
			Body: bilingual.Text{
				Ar: "الباكوتشيول مستخلص من نبات البابشي، ويقدم فوائد مشابهة للريتينول في نعومة البشرة وتقليل الخطوط الدقيقة، دون التهيج أو الحساسية للشمس. مثالي للمبتدئات وللبشرة الحساسة.",
				En: "Bakuchiol is extracted from the babchi plant and offers retinol-like benefits for skin texture and fine lines without the irritation or sun sensitivity. Ideal for beginners and sensitive skin.",
			},
			Category:  "skincare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "زيت الأرغان لشعر لامع",
				En: "Argan Oil for Shiny Hair",
			},
			Summary: bilingual.Text{
				Ar: "الذهب السائل المغربي لترويض التجعد وإضافة اللمعان.",
				En: "Moroccan liquid gold for taming frizz and adding shine.",
			},
			Body: bilingual.Text{
				Ar: "زيت الأرغان غني بفيتامين E والأحماض الدهنية. ضعي بضع قطرات على أطراف الشعر الرطب لترويض التجعد، أو استخدميه كحمام زيت أسبوعي قبل الغسيل لتغذية عميقة.",
				En: "Argan oil is rich in vitamin E and fatty acids. Apply a few drops to damp ends to tame frizz, or use it as a weekly pre-wash oil treatment for deep nourishment.",
			},
			Category:  "haircare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "التخلص من قشرة الرأس طبيعيًا",
				En: "Dealing with Dandruff Naturally",
			},
			Summary: bilingual.Text{
				Ar: "علاجات منزلية فعالة لفروة رأس صحية ومتوازنة.",
				En: "Effective home treatments for a healthy, balanced scalp.",
			},
			Body: bilingual.Text{
				Ar: "خل التفاح المخفف وزيت شجرة الشاي من أفضل العلاجات الطبيعية للقشرة. دلكي فروة الرأس بالمزيج قبل الاستحمام بعشرين دقيقة، وكرري ذلك مرتين أسبوعيًا حتى تتحسن الحالة.",
				En: "Diluted apple cider vinegar and tea tree oil are among the best natural dandruff treatments. Massage the mixture into the scalp twenty minutes before showering, twice a week until the condition improves.",
			},
			Category:  "haircare",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "النوم وجمال البشرة",
				En: "Beauty Sleep Is Real",
			},
			Summary: bilingual.Text{
				Ar: "كيف تصلح ساعات النوم بشرتك أثناء الليل.",
				En: "How your skin repairs itself while you sleep.",
			},
			Body: bilingual.Text{
				Ar: "أثناء النوم العميق ترتفع معدلات تجدد خلايا البشرة وإنتاج الكولاجين. احرصي على سبع إلى ثماني ساعات ليلًا، ونامي على وسادة حريرية لتقليل احتكاك البشرة والشعر.",
				En: "During deep sleep, skin cell renewal and collagen production peak. Aim for seven to eight hours a night, and sleep on a silk pillowcase to reduce friction on skin and hair.",
			},
			Category:  "lifestyle",
			Published: true,
		},
		{
			Title: bilingual.Text{
				Ar: "الجمال يبدأ من طبقك",
				En: "Beauty Starts on Your Plate",
			},
			Summary: bilingual.Text{
				Ar: "أطعمة يومية تغذي البشرة والشعر من الداخل.",
				En: "Everyday foods that nourish skin and hair from within.",
			},
			Body: bilingual.Text{
				Ar: "الأفوكادو والمكسرات والأسماك الدهنية غنية بالدهون الصحية التي تحافظ على مرونة البشرة، بينما يمد التوت والخضروات الورقية الجسم بمضادات الأكسدة التي تحارب علامات التقدم في السن.",
				En: "Avocados, nuts, and oily fish are rich in healthy fats that keep skin supple, while berries and leafy greens deliver the antioxidants that fight visible aging.",
			},
			Category:  "lifestyle",
			Published: true,
		},
	}
}

func demoRoutines() []routine.CreateInput {
	return []routine.CreateInput{
		{
			Title: bilingual.Text{
				Ar: "روتين إشراقة الصباح",
				En: "Morning Glow Routine",
			},
			Description: bilingual.Text{
				Ar: "أربع خطوات بسيطة لبدء اليوم ببشرة منتعشة ومحمية.",
				En: "Four simple steps to start the day with fresh, protected skin.",
			},
			Category: routine.CategoryMorning,
			Steps: []routine.StepInput{
				{Title: bilingual.Text{Ar: "نظفي بغسول رغوي لطيف", En: "Cleanse with a gentle foam"}},
				{Title: bilingual.Text{Ar: "ضعي سيروم فيتامين سي", En: "Apply Vitamin C serum"}},
				{Title: bilingual.Text{Ar: "رطبي البشرة", En: "Moisturize"}},
				{Title: bilingual.Text{Ar: "ضعي واقي الشمس (SPF 50)", En: "Apply Sunscreen (SPF 50)"}},
			},
		},
		{
			Title: bilingual.Text{
				Ar: "روتين المساء المرمم",
				En: "Evening Restoration",
			},
			Description: bilingual.Text{
				Ar: "ثلاث خطوات قبل النوم تساعد البشرة على التجدد ليلًا.",
				En: "Three bedtime steps that help the skin regenerate overnight.",
			},
			Category: routine.CategoryEvening,
			Steps: []routine.StepInput{
				{Title: bilingual.Text{Ar: "أزيلي المكياج بزيت منظف", En: "Remove makeup with cleansing oil"}},
				{Title: bilingual.Text{Ar: "ضعي سيروم ليلي مغذي", En: "Apply a nourishing night serum"}},
				{Title: bilingual.Text{Ar: "اختمي بكريم ليلي غني", En: "Finish with a rich night cream"}},
			},
		},
	}
}

func demoRemedies() []remedy.CreateInput {
	return []remedy.CreateInput{
		{
			Title: bilingual.Text{
				Ar: "قناع العسل والكركم",
				En: "Honey & Turmeric Mask",
			},
			Description: bilingual.Text{
				Ar: "قناع مهدئ ومشرق للبشرة بمكونات من مطبخك.",
				En: "A soothing, brightening face mask from your own kitchen.",
			},
			Instructions: bilingual.Text{
				Ar: "اخلطي جميع المكونات. ضعيها على الوجه لمدة 15 دقيقة. اشطفيه بالماء الدافئ.",
				En: "Mix all ingredients. Apply to face for 15 mins. Rinse with warm water.",
			},
			Ingredients: []bilingual.Text{
				{Ar: "ملعقة كبيرة عسل", En: "1 tbsp Honey"},
				{Ar: "رشة كركم", En: "1 pinch Turmeric"},
				{Ar: "ملعقة صغيرة زبادي", En: "1 tsp Yogurt"},
			},
		},
	}
}
