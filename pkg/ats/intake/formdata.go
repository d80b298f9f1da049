package intake

import "encoding/json"

// StringList accepts either a JSON array of strings or a bare scalar,
// wrapping the scalar in a single-element list. Older form clients send
// skills/languages both ways.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}

	var scalar string
	if err := json.Unmarshal(data, &scalar); err != nil {
		return err
	}
	*l = StringList{scalar}
	return nil
}

// Strings returns the list as a plain slice, never nil. An absent form
// field defaults to an empty array, not NULL, all the way to storage.
func (l StringList) Strings() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}

// CompanyForm is one employer block of the intake form. Index 0 is the
// current employer; any further entries are prior employers.
type CompanyForm struct {
	CompanyName string `json:"companyName"`
	Designation string `json:"designation"`
	Duration    string `json:"duration"`
	Salary      string `json:"salary"`

	OfferLetter           bool   `json:"offerLetter"`
	OfferLetterReason     string `json:"offerLetterReason"`
	Payslip               bool   `json:"payslip"`
	PayslipReason         string `json:"payslipReason"`
	RelievingLetter       bool   `json:"relievingLetter"`
	RelievingLetterReason string `json:"relievingLetterReason"`
	IncentiveProof        bool   `json:"incentiveProof"`
	IncentiveProofReason  string `json:"incentiveProofReason"`
}

// FormData is the flat intake-form payload. Certificate and asset fields
// are pointers so that an absent field can be told apart from an explicit
// false; absence means "do not touch this record".
type FormData struct {
	// Candidate fields.
	CandidateName       string     `json:"candidateName"`
	ProfileNumber       string     `json:"profileNumber"`
	ExecutiveName       string     `json:"executiveName"`
	Mobile1             string     `json:"mobile1"`
	Mobile2             string     `json:"mobile2"`
	Email               string     `json:"email"`
	DOB                 string     `json:"dob"`
	Gender              string     `json:"gender"`
	Location            string     `json:"location"`
	EducationLevel      string     `json:"educationLevel"`
	ExperienceLevel     string     `json:"experienceLevel"`
	Source              string     `json:"source"`
	CommunicationRating string     `json:"communicationRating"`
	Skills              StringList `json:"skills"`
	Languages           StringList `json:"languages"`
	Remarks             string     `json:"remarks"`

	// Client job fields. ProfileSubmission and Attend arrive as 'Yes'/other
	// strings from the form.
	ClientName          string `json:"clientName"`
	Designation         string `json:"designation"`
	NextFollowUpDate    string `json:"nextFollowUpDate"`
	InterviewDate       string `json:"interviewDate"`
	ExpectedJoiningDate string `json:"expectedJoiningDate"`
	ProfileSubmission   string `json:"profileSubmission"`
	Attend              string `json:"attend"`

	// Feedback text appended to the job's audit trail.
	Feedback string `json:"feedback"`

	// Education certificate fields, presence-gated.
	TenthCertificate   *bool  `json:"tenthCertificate,omitempty"`
	TenthReason        string `json:"tenthReason"`
	TwelfthCertificate *bool  `json:"twelfthCertificate,omitempty"`
	TwelfthReason      string `json:"twelfthReason"`
	DiplomaCertificate *bool  `json:"diplomaCertificate,omitempty"`
	DiplomaReason      string `json:"diplomaReason"`
	UGCertificate      *bool  `json:"ugCertificate,omitempty"`
	UGReason           string `json:"ugReason"`
	PGCertificate      *bool  `json:"pgCertificate,omitempty"`
	PGReason           string `json:"pgReason"`
	EducationGap       *bool  `json:"educationGap,omitempty"`
	EducationGapReason string `json:"educationGapReason"`

	// Experience blocks.
	ExperienceCompanies []CompanyForm `json:"experienceCompanies"`

	// Additional info (asset) fields, presence-gated.
	TwoWheeler     *bool  `json:"twoWheeler,omitempty"`
	DrivingLicense *bool  `json:"drivingLicense,omitempty"`
	LicenseNumber  string `json:"licenseNumber"`
	Laptop         *bool  `json:"laptop,omitempty"`
}

// HasCertificateFields reports whether any certificate field was present
// in the form. Certificates are only written when at least one is.
func (f FormData) HasCertificateFields() bool {
	return f.TenthCertificate != nil || f.TwelfthCertificate != nil ||
		f.DiplomaCertificate != nil || f.UGCertificate != nil ||
		f.PGCertificate != nil || f.EducationGap != nil
}

// HasAssetFields reports whether any additional-info field was present.
func (f FormData) HasAssetFields() bool {
	return f.TwoWheeler != nil || f.DrivingLicense != nil ||
		f.Laptop != nil || f.LicenseNumber != ""
}

// HasExperience reports whether the form carries at least one employer block.
func (f FormData) HasExperience() bool {
	return len(f.ExperienceCompanies) > 0
}
