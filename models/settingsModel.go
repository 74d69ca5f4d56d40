package models

// SettingType keys the singleton documents of the settings collection.
type SettingType string

const (
	SettingBonus       SettingType = "bonus"
	SettingLimits      SettingType = "limits"
	SettingOpay        SettingType = "opay"
	SettingThemeColor  SettingType = "theme-color"
	SettingHomeControl SettingType = "home-control"
)

type BonusSettings struct {
	ReferBonus   float64 `bson:"referBonus" json:"referBonus" validate:"gte=0"`
	WelcomeBonus float64 `bson:"welcomeBonus" json:"welcomeBonus" validate:"gte=0"`
}

// LimitSettings bound deposit and withdraw amounts. A zero MaxWithdraw means no upper bound.
type LimitSettings struct {
	MinDeposit  float64 `bson:"minDeposit" json:"minDeposit" validate:"gte=0"`
	MinWithdraw float64 `bson:"minWithdraw" json:"minWithdraw" validate:"gte=0"`
	MaxWithdraw float64 `bson:"maxWithdraw" json:"maxWithdraw" validate:"gte=0"`
}

type ThemeColor struct {
	Primary    string `bson:"primary" json:"primary" validate:"required,hexcolor"`
	Secondary  string `bson:"secondary" json:"secondary" validate:"required,hexcolor"`
	Background string `bson:"background" json:"background" validate:"required,hexcolor"`
	Text       string `bson:"text" json:"text" validate:"required,hexcolor"`
	Accent     string `bson:"accent" json:"accent" validate:"omitempty,hexcolor"`
}

type HomeControl struct {
	Marquee    string   `bson:"marquee" json:"marquee" validate:"max=500"`
	Notice     string   `bson:"notice" json:"notice" validate:"max=2000"`
	ShowBanner bool     `bson:"showBanner" json:"showBanner"`
	ShowPopup  bool     `bson:"showPopup" json:"showPopup"`
	PopupImage string   `bson:"popupImage" json:"popupImage" validate:"max=500"`
	Sections   []string `bson:"sections" json:"sections" validate:"dive,max=40"`
}
