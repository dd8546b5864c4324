package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// StudentSessionKey returns the cache key for a student's active session.
func (r *CacheKeyStruct) StudentSessionKey(studentID int) string {
	return fmt.Sprintf("login:student:%d", studentID)
}

// TeacherSessionKey returns the cache key for a teacher's active session.
func (r *CacheKeyStruct) TeacherSessionKey(teacherID int) string {
	return fmt.Sprintf("login:teacher:%d", teacherID)
}

// TeacherReportKey returns the cache key for a page of the teacher listing
// with group and student counts.
func (r *CacheKeyStruct) TeacherReportKey(page, limit int) string {
	return fmt.Sprintf("report:teachers:%d:%d", page, limit)
}

var CacheKey = NewCacheKeyStruct()
