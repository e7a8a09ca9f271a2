package in_memory

import (
	"blogfeed/storage"
	"blogfeed/storage/models"
	"context"
	"fmt"
)

var defaultPosts = []models.Post{
	{
		Title:   "A volta do Neymar ao Santos e como isso influência o Grêmio",
		Content: "Agora ficou mais difícil para o Grêmio, pois o Santos está mais forte com a volta do Neymar.",
	},
	{
		Title:   "A importância do marketing digital para o seu negócio",
		Content: "O marketing digital é uma ferramenta poderosa para alavancar o seu negócio.",
	},
	{
		Title:   "O que é Frontend e Backend?",
		Content: "Frontend é a parte visual de um site, já o Backend é a parte que fica por trás do site.",
	},
}

// InMemoryStorage serves a collection fixed at construction time.
// posts is never written after CreateInMemoryStorageWithPosts returns,
// so reads need no locking.
type InMemoryStorage struct {
	posts []models.Post
}

func CreateInMemoryStorage() *InMemoryStorage {
	return CreateInMemoryStorageWithPosts(defaultPosts)
}

func CreateInMemoryStorageWithPosts(posts []models.Post) *InMemoryStorage {
	return &InMemoryStorage{posts: clonePosts(posts)}
}

func (s *InMemoryStorage) GetPosts(ctx context.Context) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", storage.CanceledError, err.Error())
	}
	return clonePosts(s.posts), nil
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	return out
}
