package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ncaa-rosters/internal/roster"
	"ncaa-rosters/internal/store/db"
	"ncaa-rosters/internal/teams"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("ncaa-rosters/internal/store")

// ErrTeamNotFound is returned by GetRoster for a team that was never saved.
var ErrTeamNotFound = errors.New("team not found")

type Store struct {
	qry    *db.Queries
	makeTx db.MakeTx
}

func New(database *sql.DB) Store {
	return Store{
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
	}
}

// SavedTeam is a summary of a stored roster.
type SavedTeam struct {
	Name      string
	URL       string
	Strategy  string
	ScrapedAt time.Time
	Players   int
}

// SaveRoster replaces whatever was stored for the team with result.
func (s Store) SaveRoster(ctx context.Context, team teams.Team, result roster.Result, scrapedAt time.Time) error {
	ctx, span := tracer.Start(ctx, "SaveRoster")
	span.SetAttributes(attribute.String("team", team.Name))
	defer span.End()

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		return err
	}
	defer discard()

	err = txqry.UpsertTeam(ctx, db.UpsertTeamParams{
		Name:      team.Name,
		Url:       team.URL,
		Strategy:  result.Strategy,
		ScrapedAt: scrapedAt.Unix(),
	})
	if err != nil {
		return fmt.Errorf("save team %s: %w", team.Name, err)
	}
	err = txqry.DeletePlayers(ctx, team.Name)
	if err != nil {
		return err
	}

	for i, e := range result.Entries {
		err = txqry.CreatePlayer(ctx, db.CreatePlayerParams{
			TeamName:    team.Name,
			Idx:         int64(i),
			Jersey:      nullInt(e.Jersey),
			FirstName:   e.FirstName,
			LastName:    e.LastName,
			Position:    string(e.Position),
			SubPosition: string(e.SubPosition),
			Height:      nullString(e.Height),
			Year:        nullString(e.Year),
			Hometown:    nullString(e.Hometown),
		})
		if err != nil {
			return fmt.Errorf("save player %s: %w", e.Name(), err)
		}
	}

	return commit()
}

// GetRoster returns the stored roster of a team in its original order.
func (s Store) GetRoster(ctx context.Context, teamName string) (roster.Result, error) {
	ctx, span := tracer.Start(ctx, "GetRoster")
	defer span.End()

	team, err := s.qry.GetTeam(ctx, teamName)
	if errors.Is(err, sql.ErrNoRows) {
		return roster.Result{}, fmt.Errorf("%w: %s", ErrTeamNotFound, teamName)
	}
	if err != nil {
		return roster.Result{}, err
	}

	rows, err := s.qry.GetPlayers(ctx, teamName)
	if err != nil {
		return roster.Result{}, err
	}

	result := roster.Result{
		Strategy: team.Strategy,
		Entries:  make([]roster.Entry, 0, len(rows)),
	}
	for _, row := range rows {
		result.Entries = append(result.Entries, roster.Entry{
			Jersey:      fromNullInt(row.Jersey),
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			Position:    roster.Position(row.Position),
			SubPosition: roster.SubPosition(row.SubPosition),
			Height:      fromNullString(row.Height),
			Year:        fromNullString(row.Year),
			Hometown:    fromNullString(row.Hometown),
		})
	}
	return result, nil
}

func (s Store) ListTeams(ctx context.Context) ([]SavedTeam, error) {
	rows, err := s.qry.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SavedTeam, len(rows))
	for i, row := range rows {
		out[i] = SavedTeam{
			Name:      row.Name,
			URL:       row.Url,
			Strategy:  row.Strategy,
			ScrapedAt: time.Unix(row.ScrapedAt, 0),
			Players:   int(row.Players),
		}
	}
	return out, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func fromNullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
