package handler

import (
	"time"

	"github.com/ianglenncurilan/web-quickwork/internal/core/domain"
)

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	meta := u.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	return &userResponse{ID: u.ID, Email: u.Email, Metadata: meta}
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		AccessToken:  s.AccessToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    s.ExpiresAt,
		RefreshToken: s.RefreshToken,
		User:         toUserResponse(s.User),
	}
}

func toJobPostResponse(p domain.JobPost) jobPostResponse {
	return jobPostResponse{
		ID:             p.ID,
		JobName:        p.JobName,
		JobDescription: p.JobDescription,
		UserID:         p.UserID,
		MonthlyRate:    p.MonthlyRate,
		JobLink:        p.JobLink,
		JobType:        p.JobType,
		ImageURL:       p.ImageURL,
		PostedAt:       p.PostedAt.UTC().Format(time.RFC3339),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toJobPostResponses(posts []domain.JobPost) []jobPostResponse {
	out := make([]jobPostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toJobPostResponse(p))
	}
	return out
}

func toApplicationResponse(a domain.Application) applicationResponse {
	return applicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		UserID:      a.UserID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		City:        a.City,
		State:       a.State,
		Education:   a.Education,
		Position:    a.Position,
		Resume:      a.Resume,
		CoverLetter: a.CoverLetter,
		References:  a.References,
		Timestamp:   a.Timestamp,
	}
}

func toApplicationResponses(apps []domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}
	return out
}

func toRatingResponse(r domain.Rating) ratingResponse {
	return ratingResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		JobID:     r.JobID,
		Score:     r.RatedAt,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toRatingResponses(ratings []domain.Rating) []ratingResponse {
	out := make([]ratingResponse, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, toRatingResponse(r))
	}
	return out
}
