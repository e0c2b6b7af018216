package config

import "github.com/ytget/yt-thumbnails/internal/model"

// DefaultItems returns the compiled-in list of project videos and the file
// each thumbnail is saved as. A fresh slice is returned on every call.
func DefaultItems() []model.WorkItem {
	return []model.WorkItem{
		{URL: "https://www.instagram.com/reel/DHBWYqbMLMK/", Filename: "project1.jpg"},
		{URL: "https://www.instagram.com/reel/DEkLYkBpfUV/", Filename: "project2.jpg"},
		{URL: "https://www.instagram.com/reel/DFtAvD1p38y/", Filename: "project3.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8PQkQ5/", Filename: "project4.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8fcmNP/", Filename: "project5.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8PMMrm/", Filename: "project6.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8f7yog/", Filename: "project7.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8P8o9N/", Filename: "project8.jpg"},
		{URL: "https://vt.tiktok.com/ZSa8PVNxv/", Filename: "project9.jpg"},
		{URL: "https://www.instagram.com/reel/CzPvjSEOeTs/", Filename: "project10.jpg"},
		{URL: "https://www.instagram.com/reel/DPYPlCsDs4Z/", Filename: "project11.jpg"},
	}
}
