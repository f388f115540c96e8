package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barberiapro/booking-api/internal/models"
)

// Seed inserts the fixed Barbería Pro catalog on first boot. The catalog
// is read-only afterwards, so an already-populated table is left alone.
func Seed(db *gorm.DB) error {
	var barberCount int64
	if err := db.Model(&models.Barber{}).Count(&barberCount).Error; err != nil {
		return err
	}

	if barberCount == 0 {
		barbers := []models.Barber{
			{
				ID:        uuid.NewString(),
				Name:      "Carlos Martínez",
				Specialty: "Especialista en cortes clásicos y modernos",
				Photo:     "/api/barber-photo/1",
				Rating:    5,
				Available: true,
			},
			{
				ID:        uuid.NewString(),
				Name:      "Miguel Ángel",
				Specialty: "Experto en barbas y fade cuts",
				Photo:     "/api/barber-photo/2",
				Rating:    5,
				Available: true,
			},
			{
				ID:        uuid.NewString(),
				Name:      "Ana García",
				Specialty: "Coloración y tratamientos capilares",
				Photo:     "/api/barber-photo/3",
				Rating:    5,
				Available: true,
			},
		}

		if err := db.Create(&barbers).Error; err != nil {
			return err
		}
	}

	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}

	if serviceCount == 0 {
		services := []models.Service{
			{
				ID:          uuid.NewString(),
				Name:        "Corte de Cabello",
				Description: "Corte profesional con lavado y styling incluido",
				Duration:    30,
				Price:       250,
				Icon:        "content_cut",
			},
			{
				ID:          uuid.NewString(),
				Name:        "Arreglo de Barba",
				Description: "Perfilado y arreglo de barba con toalla caliente",
				Duration:    20,
				Price:       150,
				Icon:        "face",
			},
			{
				ID:          uuid.NewString(),
				Name:        "Corte + Barba",
				Description: "Paquete completo de corte de cabello y arreglo de barba",
				Duration:    45,
				Price:       350,
				Icon:        "clean_hands",
			},
			{
				ID:          uuid.NewString(),
				Name:        "Coloración",
				Description: "Coloración profesional con productos de alta calidad",
				Duration:    60,
				Price:       450,
				Icon:        "brush",
			},
			{
				ID:          uuid.NewString(),
				Name:        "Tratamiento Capilar",
				Description: "Tratamiento revitalizante para todo tipo de cabello",
				Duration:    40,
				Price:       350,
				Icon:        "spa",
			},
			{
				ID:          uuid.NewString(),
				Name:        "Afeitado Tradicional",
				Description: "Afeitado clásico con navaja y toalla caliente",
				Duration:    25,
				Price:       200,
				Icon:        "auto_fix_high",
			},
		}

		if err := db.Create(&services).Error; err != nil {
			return err
		}
	}

	return nil
}
