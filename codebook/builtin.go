package codebook

// The books below are transcribed from the instrument documentation
// itself, so they ship with the binary. Books that were maintained
// separately from the documentation (institutions, counties, crimes and so
// on) are loaded from external files instead, see Set.

// Court is the committing court code book.
var Court = Codebook{
	"0": "Transfer from Civil Institution",
	"1": "Special Sessions – New York City",
	"2": "County/Supreme Court – General Sessions",
	"5": "Preliminary Court",
	"8": "Children’s Court (Family Court after 9/62)",
	"9": "Court Not Stated",
}

// Race is the race code book. The documented layout carries race as a
// single digit; a letter-coded variant of this book circulated in a
// near-duplicate of the pipeline but does not match the layout and is
// treated as a defect.
var Race = Codebook{
	"1": "White",
	"2": "Black",
	"3": "Oriental",
	"4": "American Indian",
	"5": "Puerto Rican",
	"6": "Puerto Rican",
}

// Military is the military service code book.
var Military = Codebook{
	"0": "No military service",
	"1": "Military – honorable/general discharge",
	"2": "Military – discharged for mental disability",
	"3": "Military – discharged as undesirable (BCD/BCI)",
	"4": "Military – dishonorable discharge",
	"5": "Military – discharged as minor",
	"6": "Military – type not stated",
	"7": "Military – now in reserves",
	"8": "Military – active/AWOL",
	"9": "Military – not stated",
}

// Education is the educational attainment code book.
var Education = Codebook{
	"0": "Not stated",
	"1": "Illiterate/<3rd grade",
	"2": "Special/Remedial classes",
	"3": "3rd grade",
	"4": "4th grade",
	"5": "5th grade",
	"6": "6th grade",
	"7": "7th grade",
	"8": "8th grade",
	"9": "9th grade",
	"A": "10th grade",
	"B": "11th grade",
	"C": "12th grade",
	"E": "High school equivalency",
	"H": "High school graduate",
	"L": "Some college",
	"G": "College graduate",
	"M": "Master’s/Doctorate",
	"P": "Business college",
	"Q": "Technical institution",
	"R": "Other beyond high school",
}

// Occupation is the occupational group code book.
var Occupation = Codebook{
	"0": "Professional",
	"1": "Semi-professional",
	"2": "Manager/Official/Proprietor",
	"3": "Clerical",
	"4": "Sales worker",
	"5": "Craftsman/Foreman",
	"6": "Operative/Mechanic",
	"7": "Service worker",
	"8": "Laborer",
	"9": "Not stated/Unemployed/Housewife/Student",
}

// Narcotics is the narcotics use code book.
var Narcotics = Codebook{
	"1": "Uses narcotics",
	"2": "Does not use narcotics",
	"4": "Denies, but suspected",
	"9": "Not stated whether uses",
}

// Marital is the marital status code book.
var Marital = Codebook{
	"0": "Single",
	"1": "Married",
	"2": "Divorced/Annulled",
	"3": "Widowed",
	"4": "Separated",
	"6": "Common-law",
	"9": "Not stated",
}

// PrevRecord is the previous criminal record code book.
var PrevRecord = Codebook{
	"0": "No prior adult record",
	"1": "No prior adult conviction (dismissal)",
	"2": "No prior institutional commitment",
	"3": "Local jail/penitentiary only",
	"4": "State/Federal institution only",
	"5": "State/Federal + probation",
	"6": "Local + State/Federal, no probation",
	"7": "Local + State/Federal + probation",
	"8": "State/Federal + local + probation",
	"9": "Data not available",
}

// Naturalization is the naturalization status code book.
var Naturalization = Codebook{
	"1": "Alien",
	"5": "First papers only",
	"6": "Naturalized via military service",
	"7": "Naturalized (not via military)",
	"8": "Foreign-born U.S. citizen",
	"9": "Not stated",
	"-": "Not stated",
}

// Attempt is the crime attempted flag book.
var Attempt = Codebook{
	"0": "Completed",
	"1": "Attempted",
}
