package controllers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"chordbook/apierrors"
	"chordbook/sources/psql/dao"
	"chordbook/sources/psql/models"
	"chordbook/types"
)

type MusicController struct {
	musicDAO *dao.MusicDAO
	chordDAO *dao.ChordDAO
}

func NewMusicController(musicDAO *dao.MusicDAO, chordDAO *dao.ChordDAO) *MusicController {
	return &MusicController{musicDAO: musicDAO, chordDAO: chordDAO}
}

// FindAllPaged lists musics, optionally filtered by a case-insensitive
// title fragment. A name filter with zero matches is a not-found error,
// not an empty page.
func (c *MusicController) FindAllPaged(ctx context.Context, name string, page, size int) (types.Page[types.MusicMinDTO], error) {
	var (
		musics []models.Music
		total  int64
		err    error
	)
	if name != "" {
		musics, total, err = c.musicDAO.SearchByTitle(ctx, name, page, size)
		if err == nil && total == 0 {
			return types.Page[types.MusicMinDTO]{}, apierrors.NewNotFound("No musics found with name containing: " + name)
		}
	} else {
		musics, total, err = c.musicDAO.GetAllPaged(ctx, page, size)
	}
	if err != nil {
		return types.Page[types.MusicMinDTO]{}, err
	}

	dtos := make([]types.MusicMinDTO, 0, len(musics))
	for i := range musics {
		dtos = append(dtos, types.NewMusicMinDTO(&musics[i]))
	}
	return types.NewPage(dtos, page, size, total), nil
}

func (c *MusicController) FindByID(ctx context.Context, id string) (types.MusicDTO, error) {
	musicID, err := uuid.Parse(id)
	if err != nil {
		return types.MusicDTO{}, apierrors.NewNotFound("Music not found")
	}
	music, err := c.musicDAO.GetByID(ctx, musicID)
	if err != nil {
		return types.MusicDTO{}, err
	}
	if music == nil {
		return types.MusicDTO{}, apierrors.NewNotFound("Music not found")
	}
	return types.NewMusicDTO(music), nil
}

// Insert creates the music and its owned lyric in one transaction. The
// creator is the authenticated principal, never a client-supplied id.
func (c *MusicController) Insert(ctx context.Context, req types.MusicCreateRequest, principal types.Principal) (types.MusicDTO, error) {
	if err := types.Validate(req); err != nil {
		return types.MusicDTO{}, err
	}

	placements, err := c.resolvePlacements(ctx, req.Lyric.Chords)
	if err != nil {
		return types.MusicDTO{}, err
	}

	music := models.Music{
		Title:       req.Title,
		Description: req.Description,
		ReleaseDate: req.ReleaseDate.Time,
		CreatedByID: principal.ID,
		Lyric: &models.Lyric{
			Text:   req.Lyric.Text,
			Chords: placements,
		},
	}

	if err := c.musicDAO.Create(ctx, &music); err != nil {
		if dao.IsUniqueViolation(err) {
			return types.MusicDTO{}, apierrors.NewAlreadyExists("Music already exists")
		}
		return types.MusicDTO{}, err
	}

	created, err := c.musicDAO.GetByID(ctx, music.ID)
	if err != nil {
		return types.MusicDTO{}, err
	}
	return types.NewMusicDTO(created), nil
}

// Update applies a partial patch. Only fields present in the request
// change; the lyric sub-patch treats an omitted chords key as a no-op
// and an explicit empty list as a clear.
func (c *MusicController) Update(ctx context.Context, id uuid.UUID, req types.MusicPatchRequest, principal types.Principal) (types.MusicDTO, error) {
	music, err := c.musicDAO.GetByID(ctx, id)
	if err != nil {
		return types.MusicDTO{}, err
	}
	if music == nil {
		return types.MusicDTO{}, apierrors.NewNotFound("Music not found")
	}
	if err := checkOwnerOrAdmin(principal, music.CreatedByID); err != nil {
		return types.MusicDTO{}, err
	}

	if req.Title.Present {
		music.Title = req.Title.Value
	}
	if req.Description.Present {
		music.Description = req.Description.Value
	}
	if req.ReleaseDate.Present {
		music.ReleaseDate = req.ReleaseDate.Value.Time
	}

	if req.Lyric.Present {
		lyric := music.Lyric
		if lyric == nil {
			lyric = &models.Lyric{MusicID: music.ID}
			if err := c.musicDAO.SaveLyric(ctx, lyric); err != nil {
				return types.MusicDTO{}, err
			}
			music.Lyric = lyric
		}
		if req.Lyric.Value.Text.Present {
			lyric.Text = req.Lyric.Value.Text.Value
			if err := c.musicDAO.SaveLyric(ctx, lyric); err != nil {
				return types.MusicDTO{}, err
			}
		}
		if req.Lyric.Value.Chords.Present {
			placements, err := c.resolvePlacements(ctx, req.Lyric.Value.Chords.Value)
			if err != nil {
				return types.MusicDTO{}, err
			}
			if err := c.musicDAO.ReplaceLyricChords(ctx, lyric.ID, placements); err != nil {
				return types.MusicDTO{}, err
			}
		}
	}

	// Save refreshes updated_at even for lyric-only patches.
	if err := c.musicDAO.Save(ctx, music); err != nil {
		if dao.IsUniqueViolation(err) {
			return types.MusicDTO{}, apierrors.NewAlreadyExists("Music already exists")
		}
		return types.MusicDTO{}, err
	}

	updated, err := c.musicDAO.GetByID(ctx, id)
	if err != nil {
		return types.MusicDTO{}, err
	}
	return types.NewMusicDTO(updated), nil
}

func (c *MusicController) Delete(ctx context.Context, id uuid.UUID, principal types.Principal) error {
	music, err := c.musicDAO.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if music == nil {
		return apierrors.NewNotFound("Music not found")
	}
	if err := checkOwnerOrAdmin(principal, music.CreatedByID); err != nil {
		return err
	}
	if err := c.musicDAO.Delete(ctx, id); err != nil {
		if dao.IsForeignKeyViolation(err) {
			return apierrors.NewDatabase("Referential integrity error")
		}
		return err
	}
	return nil
}

// resolvePlacements checks every referenced chord id and keeps the
// request order; order is how the chords are rendered, not a sort key.
func (c *MusicController) resolvePlacements(ctx context.Context, dtos []types.LyricChordDTO) ([]models.LyricChord, error) {
	placements := make([]models.LyricChord, 0, len(dtos))
	for _, p := range dtos {
		chord, err := c.chordDAO.GetByID(ctx, p.ChordID)
		if err != nil {
			return nil, err
		}
		if chord == nil {
			return nil, apierrors.NewNotFound(fmt.Sprintf("Chord not found: %d", p.ChordID))
		}
		placements = append(placements, models.LyricChord{ChordID: p.ChordID, Position: p.Position})
	}
	return placements, nil
}
