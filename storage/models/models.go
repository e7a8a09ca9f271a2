package models

type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostsResponse struct {
	BlogPost []Post `json:"blogPost"`
}
