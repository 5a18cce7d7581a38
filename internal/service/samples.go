package service

import (
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
)

func day(y int, m time.Month, d int) model.Date {
	return model.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func sampleNews() []*model.News {
	return []*model.News{
		{
			Title:    "Class XII Results Declared - 98% Pass Rate!",
			Content:  "We are proud to announce that our Class XII students have achieved a remarkable 98% pass rate with 15 students securing above 95% marks.",
			Emoji:    "🏆",
			Priority: model.PriorityHigh,
		},
		{
			Title:    "State Science Exhibition Winners",
			Content:  "Our students have won first prize in the State Level Science Exhibition for their innovative project on renewable energy.",
			Emoji:    "🥇",
			Priority: model.PriorityNormal,
		},
		{
			Title:    "Admissions Open for 2024-25",
			Content:  "Admissions are now open for the academic year 2024-25. Apply online or visit our campus for more details.",
			Emoji:    "🎓",
			Priority: model.PriorityNormal,
		},
		{
			Title:    "New Science Labs Inaugurated",
			Content:  "State-of-the-art science laboratories with modern equipment have been inaugurated to enhance practical learning.",
			Emoji:    "🔬",
			Priority: model.PriorityNormal,
		},
	}
}

func sampleEvents() []*model.Event {
	return []*model.Event{
		{
			Title:       "Annual Sports Day",
			Description: "Inter-house sports competitions, athletics, and cultural performances",
			Date:        day(2024, time.December, 15),
			Time:        "9:00 AM - 4:00 PM",
			Location:    "School Playground",
			Category:    model.EventSports,
			IsFeatured:  true,
		},
		{
			Title:       "Science Exhibition",
			Description: "Student projects, experiments, and innovative solutions showcase",
			Date:        day(2024, time.December, 20),
			Time:        "10:00 AM - 2:00 PM",
			Location:    "Science Labs",
			Category:    model.EventAcademic,
		},
		{
			Title:       "Christmas Celebration",
			Description: "Carol singing, dance performances, and festive activities",
			Date:        day(2024, time.December, 25),
			Time:        "11:00 AM - 1:00 PM",
			Location:    "School Auditorium",
			Category:    model.EventCultural,
		},
		{
			Title:       "Republic Day Celebration",
			Description: "Flag hoisting ceremony, cultural programs, and patriotic performances",
			Date:        day(2025, time.January, 26),
			Time:        "8:00 AM - 12:00 PM",
			Location:    "School Ground",
			Category:    model.EventCultural,
			IsFeatured:  true,
		},
	}
}

func sampleResults() []*model.Result {
	return []*model.Result{
		{ClassLevel: model.Class12, Year: 2024, PassRate: "98%", Above90: 45, Above95: 15, DistrictRank: "2nd", StateRank: "15th"},
		{ClassLevel: model.Class12, Year: 2023, PassRate: "96%", Above90: 38, Above95: 12, DistrictRank: "3rd", StateRank: "18th"},
		{ClassLevel: model.Class12, Year: 2022, PassRate: "94%", Above90: 35, Above95: 10, DistrictRank: "4th", StateRank: "22nd"},
		{ClassLevel: model.Class10, Year: 2024, PassRate: "100%", Above90: 52, Above95: 18, DistrictRank: "1st", StateRank: "8th"},
		{ClassLevel: model.Class10, Year: 2023, PassRate: "98%", Above90: 48, Above95: 15, DistrictRank: "2nd", StateRank: "12th"},
		{ClassLevel: model.Class10, Year: 2022, PassRate: "96%", Above90: 42, Above95: 13, DistrictRank: "3rd", StateRank: "16th"},
	}
}

func sampleToppers() []*model.Topper {
	return []*model.Topper{
		{Name: "Priya Sharma", ClassLevel: model.Class12, Year: 2024, Percentage: 98.2, Stream: "Science", Achievement: "District Topper"},
		{Name: "Rahul Kumar", ClassLevel: model.Class12, Year: 2024, Percentage: 97.8, Stream: "Commerce", Achievement: "Stream Topper"},
		{Name: "Anita Singh", ClassLevel: model.Class12, Year: 2024, Percentage: 96.5, Stream: "Arts", Achievement: "Stream Topper"},
		{Name: "Vikash Patel", ClassLevel: model.Class10, Year: 2024, Percentage: 99.2, Stream: "General", Achievement: "District Topper"},
		{Name: "Kavya Gupta", ClassLevel: model.Class10, Year: 2024, Percentage: 98.6, Stream: "General", Achievement: "School Topper"},
	}
}

func sampleFaculty() []*model.Faculty {
	return []*model.Faculty{
		{
			Name:           "Mrs. Sunita Sharma",
			Position:       "Principal",
			Qualifications: "M.Ed, B.Ed, M.A. (English)",
			Experience:     "25+ Years Experience",
			Subjects:       "Educational Leadership, Administration",
			Description:    "Educational leadership and administration specialist with extensive experience in curriculum development.",
			PositionOrder:  1,
		},
		{
			Name:           "Mr. Rajesh Kumar",
			Position:       "Vice Principal",
			Qualifications: "M.Sc. (Mathematics), B.Ed",
			Experience:     "20+ Years Experience",
			Subjects:       "Mathematics, Statistics",
			Description:    "Mathematics department head with expertise in advanced mathematics and analytical thinking.",
			PositionOrder:  2,
		},
		{
			Name:           "Dr. Priya Singh",
			Position:       "Science Department Head",
			Qualifications: "Ph.D. (Chemistry), M.Sc., B.Ed",
			Experience:     "15+ Years Experience",
			Subjects:       "Chemistry, Physics",
			Description:    "Research-oriented chemistry teacher focusing on practical applications and scientific methodology.",
			PositionOrder:  3,
		},
		{
			Name:           "Mrs. Meera Gupta",
			Position:       "English Teacher",
			Qualifications: "M.A. (English), B.Ed",
			Experience:     "18+ Years Experience",
			Subjects:       "English Literature, Communication",
			Description:    "Language specialist with focus on communication skills and literature appreciation.",
			PositionOrder:  4,
		},
		{
			Name:           "Mr. Amit Verma",
			Position:       "Computer Science Teacher",
			Qualifications: "MCA, B.Tech (IT)",
			Experience:     "12+ Years Experience",
			Subjects:       "Computer Science, Programming",
			Description:    "Technology educator specializing in programming, web development, and digital literacy.",
			PositionOrder:  5,
		},
		{
			Name:           "Mrs. Sushila Yadav",
			Position:       "Hindi Teacher",
			Qualifications: "M.A. (Hindi), B.Ed",
			Experience:     "16+ Years Experience",
			Subjects:       "Hindi Literature, Grammar",
			Description:    "Hindi language and literature expert with focus on cultural values and communication skills.",
			PositionOrder:  6,
		},
	}
}
