package main

import (
	"context"

	"github.com/darasa/lms/core/course"
)

var seedCourses = []course.NewCourse{
	{
		Title:       "Introduction to React",
		Description: "Learn the basics of React.js",
		Instructor:  "dhana",
		Duration:    "4 weeks",
	},
	{
		Title:       "Advanced JavaScript",
		Description: "Deep dive into modern JavaScript",
		Instructor:  "dhana",
		Duration:    "6 weeks",
	},
	{
		Title:       "Web Development Fundamentals",
		Description: "HTML, CSS, and basic JavaScript",
		Instructor:  "dhanapriya",
		Duration:    "8 weeks",
	},
}

// addCourses seeds the demo course catalogue.
func (cli *commandLine) addCourses() error {
	ctx := context.Background()
	for _, nc := range seedCourses {
		if _, err := cli.crsSvc.Create(ctx, nc); err != nil {
			return err
		}
	}
	return nil
}
