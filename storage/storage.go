package storage

import (
	"blogfeed/storage/models"
	"context"
	"errors"
	"fmt"
)

var (
	InternalError = errors.New("storage internal error")
	ClientError   = errors.New("storage client error")
	CanceledError = fmt.Errorf("%w.canceled", ClientError)
)

type Storage interface {
	GetPosts(ctx context.Context) ([]models.Post, error)
}
