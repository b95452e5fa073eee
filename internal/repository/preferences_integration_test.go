//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/repository"
	"github.com/Knucklefist1/MyHaulierMobile-sub000/internal/service/matching"
)

type PreferenceRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.PreferenceRepo
}

func (s *PreferenceRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewPreferenceRepo(tcPool)
}

func (s *PreferenceRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE match_preferences`)
	s.Require().NoError(err)
}

func (s *PreferenceRepositorySuite) TestLoadMissingReturnsNil() {
	got, err := s.repo.LoadPreferences(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Require().Nil(got)
}

func (s *PreferenceRepositorySuite) TestSaveAndLoad() {
	ctx := context.Background()

	in := matching.Preferences{
		MaxDistance:        600,
		MinRating:          4,
		PreferredCountries: []string{"DK", "SE"},
		MaxPrice:           12000,
	}
	s.Require().NoError(s.repo.SavePreferences(ctx, "u1", in))

	got, err := s.repo.LoadPreferences(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(in, *got)
}

func (s *PreferenceRepositorySuite) TestSaveOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SavePreferences(ctx, "u1", matching.Preferences{
		MaxDistance:        600,
		MinRating:          4,
		PreferredCountries: []string{"DK"},
		MaxPrice:           12000,
	}))
	s.Require().NoError(s.repo.SavePreferences(ctx, "u1", matching.Preferences{
		MaxDistance:        300,
		MinRating:          3.5,
		PreferredCountries: []string{"NO"},
		MaxPrice:           8000,
	}))

	got, err := s.repo.LoadPreferences(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.InDelta(300, got.MaxDistance, 1e-9)
	s.InDelta(3.5, got.MinRating, 1e-9)
	s.Equal([]string{"NO"}, got.PreferredCountries)
}

func (s *PreferenceRepositorySuite) TestCountriesNeverNil() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SavePreferences(ctx, "u1", matching.Preferences{
		MaxDistance: 100,
		MinRating:   2,
		MaxPrice:    1000,
	}))

	got, err := s.repo.LoadPreferences(ctx, "u1")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.NotNil(got.PreferredCountries)
	s.Empty(got.PreferredCountries)
}

func (s *PreferenceRepositorySuite) TestUsersAreIsolated() {
	ctx := context.Background()

	s.Require().NoError(s.repo.SavePreferences(ctx, "u1", matching.Preferences{MinRating: 4, PreferredCountries: []string{"DK"}}))
	s.Require().NoError(s.repo.SavePreferences(ctx, "u2", matching.Preferences{MinRating: 2, PreferredCountries: []string{"SE"}}))

	got, err := s.repo.LoadPreferences(ctx, "u2")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.InDelta(2, got.MinRating, 1e-9)
	s.Equal([]string{"SE"}, got.PreferredCountries)
}

func (s *PreferenceRepositorySuite) TestLoad_ContextCanceled_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := s.repo.LoadPreferences(ctx, "u1")
	s.Nil(got)
	s.Error(err)
}

func TestPreferenceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PreferenceRepositorySuite))
}
