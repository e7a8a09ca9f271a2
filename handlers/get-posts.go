package handlers

import (
	"blogfeed/storage"
	"blogfeed/storage/models"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func (h *HTTPHandler) HandleGetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Storage.GetPosts(r.Context())
	if err != nil {
		if errors.Is(err, storage.CanceledError) {
			log.Printf("Request canceled while getting posts: %s", err.Error())
			http.Error(w, "Request canceled", http.StatusServiceUnavailable)
			return
		}
		log.Printf("Failed to get posts: %s", err.Error())
		http.Error(w, INTERNAL_ERROR_MESSAGE, http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	rawResponse, err := json.Marshal(models.PostsResponse{BlogPost: posts})
	if err != nil {
		log.Printf("Failed to dump posts to json: %s", err.Error())
		http.Error(w, INTERNAL_ERROR_MESSAGE, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(rawResponse)
}
