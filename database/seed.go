package database

import (
	"context"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

// SeedProjects returns the demonstration projects shown on a fresh site.
func SeedProjects() []models.Project {
	return []models.Project{
		{
			Title:         "FinTech App",
			TitleEn:       strPtr("FinTech App"),
			Category:      models.CategoryDevelopment,
			Status:        models.StatusCompleted,
			Year:          "2023",
			Image:         "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2670&auto=format&fit=crop",
			Description:   "Комплексное банковское приложение, ориентированное на упрощение денежных переводов и аналитику расходов. Мы создали интуитивно понятный интерфейс, который позволяет пользователям отслеживать свои финансы в реальном времени.",
			DescriptionEn: strPtr("A full banking app focused on simple money transfers and spending analytics, with an interface that lets users follow their finances in real time."),
			Client:        strPtr("NeoBank Ltd."),
			Role:          strPtr("Frontend & UI/UX"),
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1563986768609-322da13575f3?q=80&w=1470&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1556742049-0cfed4f7a07d?q=80&w=1470&auto=format&fit=crop",
			},
		},
		{
			Title:         "Modern Branding",
			TitleEn:       strPtr("Modern Branding"),
			Category:      models.CategoryDesign,
			Status:        models.StatusCompleted,
			Year:          "2024",
			Image:         "https://images.unsplash.com/photo-1600607686527-6fb886090705?q=80&w=2500&auto=format&fit=crop",
			Description:   "Ребрендинг для архитектурного бюро. Задача состояла в том, чтобы передать ощущение монументальности и легкости одновременно через типографику и цветовую палитру.",
			DescriptionEn: strPtr("A rebrand for an architecture studio that conveys monumentality and lightness at once through typography and colour."),
			Client:        strPtr("ArchTech"),
			Role:          strPtr("Art Direction"),
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?q=80&w=1473&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?q=80&w=1470&auto=format&fit=crop",
			},
		},
		{
			Title:         "Eco Startup",
			TitleEn:       strPtr("Eco Startup"),
			Category:      models.CategoryStartups,
			Status:        models.StatusInProgress,
			Year:          "2024",
			Image:         "https://images.unsplash.com/photo-1497366216548-37526070297c?q=80&w=2301&auto=format&fit=crop",
			Description:   "Платформа для отслеживания углеродного следа малого бизнеса. Проект находится в стадии активной разработки MVP.",
			DescriptionEn: strPtr("A platform that tracks the carbon footprint of small businesses. The MVP is in active development."),
			Client:        strPtr("GreenLife"),
			Role:          strPtr("Full Stack Dev"),
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1542601906990-b4d3fb7d5fa5?q=80&w=1413&auto=format&fit=crop",
			},
		},
		{
			Title:         "Abstract 3D",
			TitleEn:       strPtr("Abstract 3D"),
			Category:      models.CategoryOther,
			Status:        models.StatusCompleted,
			Year:          "2022",
			Image:         "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?q=80&w=2564&auto=format&fit=crop",
			Description:   "Серия 3D-иллюстраций для музыкального фестиваля электронной музыки. Исследование форм, света и текстур.",
			DescriptionEn: strPtr("A series of 3D illustrations for an electronic music festival exploring form, light and texture."),
			Role:          strPtr("3D Artist"),
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1614730341194-75c607400070?q=80&w=1474&auto=format&fit=crop",
			},
		},
		{
			Title:         "Crypto Dashboard",
			TitleEn:       strPtr("Crypto Dashboard"),
			Category:      models.CategoryDevelopment,
			Status:        models.StatusCompleted,
			Year:          "2023",
			Image:         "https://images.unsplash.com/photo-1642104704074-907c0698cbd9?q=80&w=2532&auto=format&fit=crop",
			Description:   "Аналитическая панель для трейдеров криптовалют с обновлением данных в реальном времени через WebSockets.",
			DescriptionEn: strPtr("An analytics dashboard for crypto traders with real-time updates over WebSockets."),
			Client:        strPtr("CryptoFin"),
			Role:          strPtr("Frontend Lead"),
			Images: datatypes.JSONSlice[string]{
				"https://images.unsplash.com/photo-1639762681485-074b7f938ba0?q=80&w=1632&auto=format&fit=crop",
			},
		},
	}
}

// Seed replaces every stored project with the given ones in a single
// transaction and returns how many projects were removed first.
func (d Database) Seed(ctx context.Context, projects []models.Project) (int64, error) {
	var removed int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Project{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected

		for i := range projects {
			projects[i].Normalize()
			if err := projects[i].Validate(); err != nil {
				return err
			}
		}
		if len(projects) == 0 {
			return nil
		}
		return tx.Create(&projects).Error
	})
	if err != nil {
		if errs.IsValidationError(err) {
			return 0, err
		}
		return 0, errs.NewTransactionFailedError("seed projects", err)
	}
	return removed, nil
}
