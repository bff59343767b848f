package model

// Category is the closed set of services a vendor can offer. Values are
// stored as upper-case strings so they survive JSON round-trips unchanged.
type Category string

const (
	CategoryVenue       Category = "VENUE"
	CategoryCatering    Category = "CATERING"
	CategoryPhotography Category = "PHOTOGRAPHY"
	CategoryMusic       Category = "MUSIC"
	CategoryDecor       Category = "DECOR"
	CategoryPlanning    Category = "PLANNING"
	CategoryAttire      Category = "ATTIRE"
	CategoryBeauty      Category = "BEAUTY"
	CategoryTransport   Category = "TRANSPORT"
	CategoryStationery  Category = "STATIONERY"
	CategoryCake        Category = "CAKE"
	CategoryFavors      Category = "FAVORS"
	CategoryOther       Category = "OTHER"
)

// categories holds every valid Category for membership checks.
var categories = map[Category]bool{
	CategoryVenue: true, CategoryCatering: true, CategoryPhotography: true,
	CategoryMusic: true, CategoryDecor: true, CategoryPlanning: true,
	CategoryAttire: true, CategoryBeauty: true, CategoryTransport: true,
	CategoryStationery: true, CategoryCake: true, CategoryFavors: true,
	CategoryOther: true,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool { return categories[c] }

// Review is a rating left for a vendor. Ratings range 1-10. Reviews are
// held on the vendor record as submitted; no aggregate score is computed.
type Review struct {
	Author  uint64 `json:"author"`
	Rating  uint64 `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Vendor is a top-level aggregate describing a wedding service provider.
//
// Fields:
//  ID           – generator-issued identifier, immutable once assigned.
//  Owner        – user id of the registering principal; compared for
//                 equality when confirming bookings.
//  Availability – set of date strings on which the vendor can be booked.
//  Bookings     – non-owning back-references to weddings that booked the
//                 vendor, used only for lookup.
type Vendor struct {
	ID           uint64   `json:"id"`
	Owner        uint64   `json:"owner"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	ServiceCost  uint64   `json:"service_cost"`
	Availability []string `json:"availability"`
	Rating       uint64   `json:"rating"`
	Reviews      []Review `json:"reviews"`
	Bookings     []uint64 `json:"bookings"`
	Verified     bool     `json:"verified"`
	Portfolio    []string `json:"portfolio"`
}

// AvailableOn reports whether date appears in the vendor's availability set.
func (v Vendor) AvailableOn(date string) bool {
	for _, d := range v.Availability {
		if d == date {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can derive a new record without
// touching the stored value.
func (v Vendor) Clone() Vendor {
	cp := v
	cp.Availability = append([]string(nil), v.Availability...)
	cp.Reviews = append([]Review(nil), v.Reviews...)
	cp.Bookings = append([]uint64(nil), v.Bookings...)
	cp.Portfolio = append([]string(nil), v.Portfolio...)
	return cp
}
