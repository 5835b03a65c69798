package dataset

// Canonical column names shared by the scrape and reconcile pipelines.
const (
	ColBorough     = "BOROUGH"
	ColBlock       = "BLOCK"
	ColLot         = "LOT"
	ColAddress     = "ADDRESS"
	ColZipCode     = "ZIP CODE"
	ColDevelopment = "DEVELOPMENT"
	ColManagedBy   = "MANAGED BY"
	ColCD          = "CD#"
	ColFacility    = "FACILITY"
)
