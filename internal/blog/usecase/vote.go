package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type VoteOutput struct {
	Count int64
	Voted bool
}

// VoteGet reports the vote count of a blog and whether the caller voted.
func (s *Usecase) VoteGet(ctx context.Context, blogID int64) (*VoteOutput, error) {
	ctx, span := s.startSpan(ctx, "VoteGet")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	return s.voteState(ctx, blogID, clm.UserID)
}

// VoteAdd records the caller's vote. Voting twice keeps a single vote.
func (s *Usecase) VoteAdd(ctx context.Context, blogID int64) (*VoteOutput, error) {
	ctx, span := s.startSpan(ctx, "VoteAdd")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	err = s.repoDB.AddVote(ctx, blogID, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add vote", "blog_id", blogID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.voteState(ctx, blogID, clm.UserID)
}

// VoteRemove withdraws the caller's vote if there is one.
func (s *Usecase) VoteRemove(ctx context.Context, blogID int64) (*VoteOutput, error) {
	ctx, span := s.startSpan(ctx, "VoteRemove")
	defer span.End()

	clm, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.RemoveVote(ctx, blogID, clm.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo remove vote", "blog_id", blogID, "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return s.voteState(ctx, blogID, clm.UserID)
}

func (s *Usecase) voteState(ctx context.Context, blogID, userID int64) (*VoteOutput, error) {
	state, err := s.repoDB.GetVoteState(ctx, blogID, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errBlogNotFound()
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get vote state", "blog_id", blogID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VoteOutput{Count: state.Count, Voted: state.Voted}, nil
}
