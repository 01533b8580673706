package model

import "time"

// Setting is the single organization profile row printed as the header of every
// generated document. It replaces the browser-local profile of the legacy
// front-end: loaded explicitly and passed to the renderer, never ambient.
type Setting struct {
	ID        int    `gorm:"primaryKey"`
	Nom       string `gorm:"not null"`
	SousTitre string
	Adresse   string
	Telephone string
	Email     string
	NIF       string `gorm:"column:nif"`
	RC        string `gorm:"column:rc"`
	Article   string
	NIS       string `gorm:"column:nis"`
	UpdatedAt time.Time
}

// DefaultSetting mirrors the defaults shipped with the legacy application.
func DefaultSetting() Setting {
	return Setting{
		ID:        1,
		Nom:       "L’île des Bambins",
		SousTitre: "Crèche et préscolaire",
		Adresse:   "1000 logt IHEDDADEN BEJAIA",
		Telephone: "0553367356 / 034 11 98 27",
		Email:     "liledesbambins@gmail.com",
		NIF:       "196506010063735",
		Article:   "06017732933",
		RC:        "06/01-0961315A10",
	}
}
