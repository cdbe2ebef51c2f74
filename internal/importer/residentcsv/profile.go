package residentcsv

// Profile describes the column layout of a resident roster export.
// Adding a new layout is just adding a new Profile to the profiles slice.
type Profile struct {
	Name        string
	FullNameCol string
	NationalCol string
	DOBCol      string
	GenderCol   string // optional
	PhoneCol    string // optional
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.FullNameCol, p.NationalCol, p.DOBCol}
}

// profiles is the ordered list of roster layouts to try during
// auto-detection. More specific profiles should come first.
var profiles = []Profile{
	{
		Name:        "standard",
		FullNameCol: "full_name",
		NationalCol: "national_id",
		DOBCol:      "date_of_birth",
		GenderCol:   "gender",
		PhoneCol:    "phone_number",
	},
	{
		Name:        "vietnamese",
		FullNameCol: "Họ và tên",
		NationalCol: "CCCD",
		DOBCol:      "Ngày sinh",
		GenderCol:   "Giới tính",
		PhoneCol:    "Số điện thoại",
	},
}
