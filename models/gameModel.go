package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game holds the storefront flags kept locally for a provider game.
type Game struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GameID    string             `bson:"gameID" json:"gameID"`
	Name      string             `bson:"name" json:"name"`
	Provider  string             `bson:"provider" json:"provider"`
	Image     string             `bson:"image" json:"image"`
	Hot       bool               `bson:"hot" json:"hot"`
	New       bool               `bson:"new" json:"new"`
	Lobby     bool               `bson:"lobby" json:"lobby"`
	Selected  bool               `bson:"selected" json:"selected"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type GameFlag string

const (
	FlagHot      GameFlag = "hot"
	FlagNew      GameFlag = "new"
	FlagLobby    GameFlag = "lobby"
	FlagSelected GameFlag = "selected"
)

func (f GameFlag) Valid() bool {
	switch f {
	case FlagHot, FlagNew, FlagLobby, FlagSelected:
		return true
	}
	return false
}

type GameFlagsUpdate struct {
	Name     *string `json:"name" validate:"omitempty,max=120"`
	Provider *string `json:"provider" validate:"omitempty,max=60"`
	Image    *string `json:"image" validate:"omitempty,max=500"`
	Hot      *bool   `json:"hot"`
	New      *bool   `json:"new"`
	Lobby    *bool   `json:"lobby"`
	Selected *bool   `json:"selected"`
}

// CatalogGame is one provider game with the local flags merged in.
type CatalogGame struct {
	GameID   string `json:"gameID"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Hot      bool   `json:"hot"`
	New      bool   `json:"new"`
	Lobby    bool   `json:"lobby"`
	Selected bool   `json:"selected"`
}

func (g *CatalogGame) ApplyFlags(local Game) {
	g.Hot = local.Hot
	g.New = local.New
	g.Lobby = local.Lobby
	g.Selected = local.Selected
	if local.Image != "" {
		g.Image = local.Image
	}
}

type CatalogPage struct {
	Games      []CatalogGame `json:"data"`
	Page       int64         `json:"page"`
	TotalPages int64         `json:"totalPages"`
	Total      int64         `json:"total"`
}

type CatalogQuery struct {
	Page     Page
	Provider string
	Category string
	Search   string
}

type Provider struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// LaunchParams identifies the player a provider launch link is minted for.
type LaunchParams struct {
	GameID   string
	UserID   string
	Username string
	Balance  float64
}
