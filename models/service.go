package models

// GroomingService is one entry of the fixed service catalog. Prices are in
// rupiah. Bookings snapshot the name and price at creation; the catalog is
// never consulted again for an existing booking.
type GroomingService struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// serviceCatalog is the fixed catalog of offered grooming packages.
var serviceCatalog = map[string]GroomingService{
	"mandi-biasa":    {Code: "mandi-biasa", Name: "Mandi Biasa", Price: 50000},
	"mandi-kutu":     {Code: "mandi-kutu", Name: "Mandi Anti Kutu", Price: 75000},
	"mandi-grooming": {Code: "mandi-grooming", Name: "Mandi + Grooming Lengkap", Price: 99000},
}

// GetServiceByCode looks up a catalog entry by its code.
func GetServiceByCode(code string) (GroomingService, bool) {
	svc, ok := serviceCatalog[code]
	return svc, ok
}

// ListServices returns all catalog entries in a stable order.
func ListServices() []GroomingService {
	return []GroomingService{
		serviceCatalog["mandi-biasa"],
		serviceCatalog["mandi-kutu"],
		serviceCatalog["mandi-grooming"],
	}
}
