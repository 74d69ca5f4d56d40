package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/simhonchourasia/playbet-be/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type GameService struct {
	games    GameStore
	users    UserStore
	provider GameProvider
	log      logrus.FieldLogger
}

func NewGameService(games GameStore, users UserStore, provider GameProvider, log logrus.FieldLogger) *GameService {
	return &GameService{
		games:    games,
		users:    users,
		provider: provider,
		log:      log.WithField("component", "games"),
	}
}

// Catalog fetches one provider page and the local flag documents concurrently and merges them
// by gameID. A provider failure yields an empty page; a local store failure is an error.
func (s *GameService) Catalog(ctx context.Context, q models.CatalogQuery) (*models.CatalogPage, error) {
	var (
		remote    *models.CatalogPage
		remoteErr error
		local     []models.Game
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		remote, remoteErr = s.provider.ListGames(gctx, q)
		return nil
	})
	g.Go(func() error {
		var err error
		local, err = s.games.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if remoteErr != nil || remote == nil {
		s.log.WithError(remoteErr).WithField("page", q.Page.Number).Warn("provider catalog unavailable")
		return &models.CatalogPage{Games: []models.CatalogGame{}, Page: q.Page.Number}, nil
	}

	flags := make(map[string]models.Game, len(local))
	for _, game := range local {
		flags[game.GameID] = game
	}
	if remote.Games == nil {
		remote.Games = []models.CatalogGame{}
	}
	for i := range remote.Games {
		if game, ok := flags[remote.Games[i].GameID]; ok {
			remote.Games[i].ApplyFlags(game)
		}
	}
	return remote, nil
}

func (s *GameService) Providers(ctx context.Context) []models.Provider {
	providers, err := s.provider.Providers(ctx)
	if err != nil {
		s.log.WithError(err).Warn("provider list unavailable")
		return []models.Provider{}
	}
	if providers == nil {
		providers = []models.Provider{}
	}
	return providers
}

func (s *GameService) Flagged(ctx context.Context, flag string) ([]models.Game, error) {
	f := models.GameFlag(strings.ToLower(flag))
	if !f.Valid() {
		return nil, ErrInvalidFlag
	}
	return s.games.FindFlagged(ctx, f)
}

func (s *GameService) UpdateFlags(ctx context.Context, gameID string, update models.GameFlagsUpdate) (*models.Game, error) {
	game, err := s.games.Upsert(ctx, strings.TrimSpace(gameID), update)
	if err != nil {
		return nil, err
	}
	s.log.WithField("gameID", game.GameID).Info("game flags updated")
	return game, nil
}

func (s *GameService) Delete(ctx context.Context, gameID string) error {
	return notFound(s.games.Delete(ctx, gameID))
}

// Launch asks the provider for a session URL carrying the player's identity and balance.
func (s *GameService) Launch(ctx context.Context, gameID string, userID primitive.ObjectID) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", notFound(err)
	}
	if user.Blocked {
		return "", ErrBlocked
	}
	url, err := s.provider.LaunchURL(ctx, models.LaunchParams{
		GameID:   gameID,
		UserID:   user.ID.Hex(),
		Username: user.Name,
		Balance:  user.Balance,
	})
	if err != nil {
		s.log.WithError(err).WithField("gameID", gameID).Error("game launch failed")
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return url, nil
}
