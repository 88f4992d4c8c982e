package domain

import "time"

type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	Name string `json:"name"`
}

type DeleteClientResponse struct {
	ID int64 `json:"id"`
}
