package mockdata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Department is one org unit with its position ladder, most junior first, and
// the annual salary range the ladder spans.
type Department struct {
	Name      string   `yaml:"name"`
	Positions []string `yaml:"positions"`
	SalaryMin int64    `yaml:"salary_min"`
	SalaryMax int64    `yaml:"salary_max"`
}

// Catalog is the pool of values the generators draw from.
type Catalog struct {
	FirstNames  []string     `yaml:"first_names"`
	LastNames   []string     `yaml:"last_names"`
	Departments []Department `yaml:"departments"`
}

var (
	ErrEmptyNamePool      = errors.New("catalog name pools must not be empty")
	ErrNoDepartments      = errors.New("catalog must define at least one department")
	ErrEmptyLadder        = errors.New("department has no positions")
	ErrInvalidSalaryRange = errors.New("department salary_min must not exceed salary_max")
)

func (c Catalog) Validate() error {
	if len(c.FirstNames) == 0 || len(c.LastNames) == 0 {
		return ErrEmptyNamePool
	}
	if len(c.Departments) == 0 {
		return ErrNoDepartments
	}
	for _, d := range c.Departments {
		if len(d.Positions) == 0 {
			return fmt.Errorf("%s: %w", d.Name, ErrEmptyLadder)
		}
		if d.SalaryMin > d.SalaryMax || d.SalaryMin < 0 {
			return fmt.Errorf("%s: %w", d.Name, ErrInvalidSalaryRange)
		}
	}
	return nil
}

// LoadCatalog reads a YAML catalog from path. Sections left out of the file
// keep their default values.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read seed catalog: %w", err)
	}

	var override Catalog
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse seed catalog: %w", err)
	}

	c := DefaultCatalog()
	if len(override.FirstNames) > 0 {
		c.FirstNames = override.FirstNames
	}
	if len(override.LastNames) > 0 {
		c.LastNames = override.LastNames
	}
	if len(override.Departments) > 0 {
		c.Departments = override.Departments
	}

	if err := c.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid seed catalog: %w", err)
	}
	return c, nil
}

// DefaultCatalog returns a fresh copy of the built-in tables.
func DefaultCatalog() Catalog {
	c := Catalog{
		FirstNames:  append([]string(nil), firstNames...),
		LastNames:   append([]string(nil), lastNames...),
		Departments: make([]Department, len(departments)),
	}
	for i, d := range departments {
		d.Positions = append([]string(nil), d.Positions...)
		c.Departments[i] = d
	}
	return c
}

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Vihaan", "Arjun", "Sai", "Arnav", "Ayaan", "Krishna", "Ishaan",
	"Aadhya", "Ananya", "Pari", "Anika", "Diya", "Aaradhya", "Sara", "Kiara", "Avni", "Saanvi",
	"Rahul", "Rohan", "Amit", "Raj", "Ravi", "Karan", "Vikram", "Nikhil", "Abhishek", "Suresh",
	"Priya", "Neha", "Pooja", "Sneha", "Kavya", "Shruti", "Anjali", "Meera", "Riya", "Simran",
	"Aryan", "Dhruv", "Kabir", "Shivansh", "Reyansh", "Yuvraj", "Advait", "Atharva", "Rudra", "Shaurya",
	"Anaya", "Myra", "Navya", "Riya", "Ira", "Shanaya", "Tara", "Zara", "Mahika", "Khushi",
	"Sanjay", "Manoj", "Vinod", "Ajay", "Vijay", "Deepak", "Ramesh", "Sunil", "Anil", "Prakash",
	"Lakshmi", "Divya", "Swati", "Rashmi", "Madhuri", "Shweta", "Nisha", "Rekha", "Sunita", "Geeta",
	"Aadhvik", "Veer", "Om", "Pranav", "Aayush", "Dev", "Krish", "Ansh", "Shiv", "Jai",
	"Aarohi", "Ishita", "Mira", "Siya", "Vanya", "Nitya", "Pihu", "Roshni", "Tanvi", "Vidya",
	"Akash", "Gaurav", "Harsh", "Kunal", "Mohit", "Naveen", "Pankaj", "Rohit", "Sachin", "Tarun",
	"Aditi", "Bhavna", "Chitra", "Deepika", "Eesha", "Gargi", "Harini", "Jyoti", "Kiran", "Mansi",
	"Bhaskar", "Chandan", "Dinesh", "Ganesh", "Hemant", "Jatin", "Kamal", "Lalit", "Mukesh", "Naresh",
	"Nandini", "Pallavi", "Preeti", "Radha", "Sarika", "Tina", "Usha", "Vaishali", "Yamini", "Zoya",
}

var lastNames = []string{
	"Sharma", "Verma", "Patel", "Kumar", "Singh", "Gupta", "Joshi", "Desai", "Reddy", "Nair",
	"Mehta", "Agarwal", "Rao", "Iyer", "Jain", "Malhotra", "Chopra", "Kapoor", "Kulkarni", "Pillai",
	"Banerjee", "Chatterjee", "Mukherjee", "Das", "Bose", "Ghosh", "Roy", "Sen", "Dutta", "Saha",
	"Yadav", "Chauhan", "Rathore", "Thakur", "Bisht", "Rawat", "Negi", "Panwar", "Tomar", "Bhandari",
	"Srinivasan", "Krishnan", "Swaminathan", "Narayanan", "Raman", "Sundaram", "Venkatesh", "Ramesh", "Shankar", "Kumar",
	"Khan", "Ahmed", "Ali", "Hussain", "Mohammad", "Rahman", "Siddiqui", "Ansari", "Sheikh", "Qureshi",
	"Menon", "Namboothiri", "Warrier", "Panicker", "Kurup", "Unni", "Kartha", "Thampi", "Nambiar", "Pillai",
	"Bhat", "Hegde", "Shetty", "Rao", "Pai", "Kamath", "Shanbhag", "Kini", "Acharya", "Nayak",
	"Arora", "Bhatia", "Khanna", "Sethi", "Dhawan", "Suri", "Chawla", "Talwar", "Kohli", "Bajaj",
	"Saxena", "Srivastava", "Mishra", "Pandey", "Tiwari", "Dubey", "Tripathi", "Shukla", "Rai", "Dwivedi",
}

var departments = []Department{
	{
		Name:      "Engineering",
		Positions: []string{"Junior Developer", "Software Engineer", "Senior Engineer", "Lead Engineer", "Engineering Manager", "Principal Engineer", "VP Engineering"},
		SalaryMin: 500000, SalaryMax: 4500000,
	},
	{
		Name:      "Product",
		Positions: []string{"Associate PM", "Product Manager", "Senior PM", "Lead PM", "Director of Product", "VP Product"},
		SalaryMin: 600000, SalaryMax: 4000000,
	},
	{
		Name:      "Sales",
		Positions: []string{"Sales Representative", "Sales Executive", "Senior Sales Executive", "Sales Manager", "Regional Sales Manager", "VP Sales"},
		SalaryMin: 400000, SalaryMax: 3500000,
	},
	{
		Name:      "Marketing",
		Positions: []string{"Marketing Associate", "Marketing Executive", "Marketing Manager", "Senior Marketing Manager", "Marketing Director", "CMO"},
		SalaryMin: 450000, SalaryMax: 3800000,
	},
	{
		Name:      "Human Resources",
		Positions: []string{"HR Coordinator", "HR Executive", "HR Manager", "Senior HR Manager", "HR Director", "CHRO"},
		SalaryMin: 400000, SalaryMax: 3200000,
	},
	{
		Name:      "Finance",
		Positions: []string{"Accounts Assistant", "Accountant", "Finance Analyst", "Finance Manager", "Senior Finance Manager", "CFO"},
		SalaryMin: 380000, SalaryMax: 4200000,
	},
	{
		Name:      "Operations",
		Positions: []string{"Operations Coordinator", "Operations Executive", "Operations Manager", "Senior Operations Manager", "VP Operations"},
		SalaryMin: 420000, SalaryMax: 3500000,
	},
	{
		Name:      "Customer Support",
		Positions: []string{"Support Associate", "Support Executive", "Support Lead", "Support Manager", "Head of Support"},
		SalaryMin: 300000, SalaryMax: 2200000,
	},
	{
		Name:      "Design",
		Positions: []string{"Junior Designer", "UI/UX Designer", "Senior Designer", "Lead Designer", "Design Manager", "Head of Design"},
		SalaryMin: 480000, SalaryMax: 3600000,
	},
	{
		Name:      "Data Science",
		Positions: []string{"Data Analyst", "Data Scientist", "Senior Data Scientist", "Lead Data Scientist", "Head of Data Science"},
		SalaryMin: 600000, SalaryMax: 4800000,
	},
	{
		Name:      "Quality Assurance",
		Positions: []string{"QA Tester", "QA Engineer", "Senior QA Engineer", "QA Lead", "QA Manager"},
		SalaryMin: 380000, SalaryMax: 2500000,
	},
	{
		Name:      "Legal",
		Positions: []string{"Legal Associate", "Legal Counsel", "Senior Legal Counsel", "Legal Director", "General Counsel"},
		SalaryMin: 600000, SalaryMax: 4500000,
	},
}

var leaveReasons = []string{
	"Personal work",
	"Family function",
	"Medical appointment",
	"Vacation",
	"Emergency",
	"Wedding ceremony",
	"Health check-up",
	"Child care",
	"Home renovation",
	"Festival celebration",
}
