package domain

// UNLocode is the United Nations location code that uniquely identifies a
// particular location.
//
// http://www.unece.org/cefact/locode/
// http://www.unece.org/cefact/locode/DocColumnDescription.htm#LOCODE
type UNLocode string

// Location is a location in our model, such as a cargo origin or
// destination, or a carrier movement endpoint.
type Location struct {
	UNLocode UNLocode
	Name     string
}

// Sample UN locodes.
var (
	SESTO UNLocode = "SESTO"
	AUMEL UNLocode = "AUMEL"
	CNHKG UNLocode = "CNHKG"
	USNYC UNLocode = "USNYC"
	USCHI UNLocode = "USCHI"
	JNTKO UNLocode = "JNTKO"
	DEHAM UNLocode = "DEHAM"
	NLRTM UNLocode = "NLRTM"
	FIHEL UNLocode = "FIHEL"
)

// Sample locations.
var (
	Stockholm = Location{SESTO, "Stockholm"}
	Melbourne = Location{AUMEL, "Melbourne"}
	Hongkong  = Location{CNHKG, "Hongkong"}
	NewYork   = Location{USNYC, "New York"}
	Chicago   = Location{USCHI, "Chicago"}
	Tokyo     = Location{JNTKO, "Tokyo"}
	Hamburg   = Location{DEHAM, "Hamburg"}
	Rotterdam = Location{NLRTM, "Rotterdam"}
	Helsinki  = Location{FIHEL, "Helsinki"}
)

// PopulateLocations stores the sample locations in the given repository.
// Handling reports for unknown locations are rejected, so the known UN
// locodes must be seeded before the service starts accepting them.
func PopulateLocations(r Repository[UNLocode, Location]) error {
	for _, l := range []Location{
		Stockholm,
		Melbourne,
		Hongkong,
		NewYork,
		Chicago,
		Tokyo,
		Hamburg,
		Rotterdam,
		Helsinki,
	} {
		if err := r.Store(l.UNLocode, l); err != nil {
			return err
		}
	}
	return nil
}
