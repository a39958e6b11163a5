package dto

type BookResponseDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name" example:"The Go Programming Language"`
	Author      string `json:"author" example:"Alan Donovan"`
	Description string `json:"description"`
	Subject     string `json:"subject" example:"Programming"`
	Year        int    `json:"year" example:"2015"`
	CoverPage   string `json:"coverPage"`
	Price       int64  `json:"price" example:"40"`
}

type BookContentResponseDTO struct {
	BookID  string `json:"bookId"`
	Content string `json:"content" example:"https://cdn.example.com/books/gopl.pdf"`
}
