// Package exifdate reads and writes the EXIF capture-date fields of JPEG
// files.
//
// Reading goes through goexif and prefers DateTimeOriginal over the generic
// DateTime tag. Writing rebuilds the JPEG's EXIF segment and stamps
// DateTimeOriginal, DateTimeDigitized and DateTime in one pass, always into a
// new copy of the file.
package exifdate
