package domain

// Division is one of Bangladesh's eight administrative divisions.
// The English name is the stable key used for filtering and storage;
// the Bengali label is presentation only.
type Division struct {
	Name   string `json:"name"`
	LabelBn string `json:"label_bn"`
}

// DivisionAll is the sentinel filter value meaning "no division filter".
const DivisionAll = "all"

var Divisions = []Division{
	{Name: "Dhaka", LabelBn: "ঢাকা"},
	{Name: "Chittagong", LabelBn: "চট্টগ্রাম"},
	{Name: "Rajshahi", LabelBn: "রাজশাহী"},
	{Name: "Khulna", LabelBn: "খুলনা"},
	{Name: "Barisal", LabelBn: "বরিশাল"},
	{Name: "Sylhet", LabelBn: "সিলেট"},
	{Name: "Rangpur", LabelBn: "রংপুর"},
	{Name: "Mymensingh", LabelBn: "ময়মনসিংহ"},
}

func IsValidDivision(name string) bool {
	for _, d := range Divisions {
		if d.Name == name {
			return true
		}
	}

	return false
}

// DivisionLabel returns the locale-appropriate label for a division key.
// Unknown keys fall back to the key itself.
func DivisionLabel(name, lang string) string {
	if lang != "bn" {
		return name
	}

	for _, d := range Divisions {
		if d.Name == name {
			return d.LabelBn
		}
	}

	return name
}
