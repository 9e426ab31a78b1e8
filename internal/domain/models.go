package domain

type Color struct {
	Name  string `json:"name" yaml:"name"`
	Hex   string `json:"hex" yaml:"hex"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
}

type Product struct {
	ID            int      `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category" yaml:"category"`
	Subcategory   string   `json:"subcategory" yaml:"subcategory"`
	Event         Event    `json:"event,omitempty" yaml:"event,omitempty"`
	Price         float64  `json:"price" yaml:"price"`
	ImageURL      string   `json:"imageUrl" yaml:"imageUrl"`
	Images        []string `json:"images" yaml:"images"`
	Colors        []Color  `json:"colors" yaml:"colors"`
	Sizes         []string `json:"sizes" yaml:"sizes"`
	Description   string   `json:"description" yaml:"description"`
	Material      string   `json:"material" yaml:"material"`
	Care          string   `json:"care" yaml:"care"`
	IsRecommended bool     `json:"isRecommended" yaml:"isRecommended"`
}

// ProductDraft is a product that has not been assigned an id by the store yet.
type ProductDraft struct {
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category" yaml:"category"`
	Subcategory   string   `json:"subcategory" yaml:"subcategory"`
	Event         Event    `json:"event,omitempty" yaml:"event,omitempty"`
	Price         float64  `json:"price" yaml:"price"`
	ImageURL      string   `json:"imageUrl" yaml:"imageUrl"`
	Images        []string `json:"images" yaml:"images"`
	Colors        []Color  `json:"colors" yaml:"colors"`
	Sizes         []string `json:"sizes" yaml:"sizes"`
	Description   string   `json:"description" yaml:"description"`
	Material      string   `json:"material" yaml:"material"`
	Care          string   `json:"care" yaml:"care"`
	IsRecommended bool     `json:"isRecommended" yaml:"isRecommended"`
}

type Subcategory struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// CategoryInfo is the display metadata of a taxonomy key. Name and Description
// hold canonical, untranslated message keys.
type CategoryInfo struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Description   string        `json:"description" yaml:"description"`
	Subcategories []Subcategory `json:"subcategories" yaml:"subcategories"`
	ProductCount  int           `json:"productCount" yaml:"productCount"`
}

type LookProduct struct {
	ProductID string `json:"productId" yaml:"product_id"`
	Name      string `json:"name" yaml:"name"`
	Link      string `json:"link" yaml:"link"`
	Price     string `json:"price,omitempty" yaml:"price,omitempty"`
}

type Look struct {
	ID              int           `json:"id" yaml:"look_id"`
	ImageURL        string        `json:"imageUrl" yaml:"image_url"`
	AltText         string        `json:"altText" yaml:"alt_text"`
	Description     string        `json:"description,omitempty" yaml:"description,omitempty"`
	RelatedProducts []LookProduct `json:"relatedProducts" yaml:"related_products"`
}

type Collection struct {
	ID          string `json:"id" yaml:"collection_id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Looks       []Look `json:"looks" yaml:"looks"`
}
