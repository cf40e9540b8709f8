package collector

// Task is one (industry, city) pair to search
type Task struct {
	Industry string
	City     string
}

// Query builds the text-search query string for the task
func (t Task) Query() string {
	return t.Industry + " in " + t.City
}

// Industries are the business categories harvested for every city
var Industries = []string{
	"Law Firm",
	"Dental Clinic",
	"Orthodontist",
	"Physiotherapy Clinic",
	"Chiropractor",
	"Med Spa",
	"Roofing Company",
	"HVAC Company",
	"Plumber",
	"Electrician",
	"Landscaping Company",
	"Pest Control Service",
	"Home Renovation Contractor",
	"Accounting Firm",
	"Real Estate Agency",
	"Auto Repair Shop",
	"Cleaning Service",
	"IT Support Company",
}

// Cities are the Canadian markets covered by the harvest
var Cities = []string{
	"Toronto, ON",
	"Mississauga, ON",
	"Brampton, ON",
	"Markham, ON",
	"Vaughan, ON",
	"Hamilton, ON",
	"London, ON",
	"Kitchener, ON",
	"Waterloo, ON",
	"Guelph, ON",
	"Oakville, ON",
	"Burlington, ON",
	"Milton, ON",
	"Ottawa, ON",
	"Montreal, QC",
	"Quebec City, QC",
	"Laval, QC",
	"Vancouver, BC",
	"Surrey, BC",
	"Burnaby, BC",
	"Richmond, BC",
	"Victoria, BC",
	"Kelowna, BC",
	"Calgary, AB",
	"Edmonton, AB",
	"Red Deer, AB",
	"Winnipeg, MB",
	"Regina, SK",
	"Saskatoon, SK",
	"Halifax, NS",
	"Moncton, NB",
	"Fredericton, NB",
	"Charlottetown, PE",
	"St. John’s, NL",
}

// BuildMatrix expands the city x industry cross-product into the full task
// list. The order is city-outer, industry-inner; it is externally observable
// because output rows keep first-seen order.
func BuildMatrix() []Task {
	tasks := make([]Task, 0, len(Cities)*len(Industries))
	for _, city := range Cities {
		for _, industry := range Industries {
			tasks = append(tasks, Task{Industry: industry, City: city})
		}
	}
	return tasks
}
