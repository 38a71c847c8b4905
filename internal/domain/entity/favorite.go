// Package entity contains the core business objects of the project.
package entity

// Favorite is a bookmarked listing stored as a copied-by-value snapshot.
// It does not track the source listing: editing or deleting the listing in
// the catalog leaves the snapshot untouched.
type Favorite struct {
	ID        string  `json:"id"` // Listing ID; unique within the favorites collection.
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Location  string  `json:"location,omitempty"`
	Price     float64 `json:"price,omitempty"`
	IsForSale bool    `json:"isForSale,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}

// SnapshotOf copies the bookmark-relevant fields out of a listing.
func SnapshotOf(listing *Listing) Favorite {
	var image string
	if len(listing.Images) > 0 {
		image = listing.Images[0]
	}

	return Favorite{
		ID:        listing.ID,
		Name:      listing.Name,
		Image:     image,
		Location:  listing.Location,
		Price:     listing.Price,
		IsForSale: listing.IsForSale,
		Rating:    listing.Rating,
	}
}
