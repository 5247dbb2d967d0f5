package exifdate

import (
	"bytes"
	"fmt"
	"os"
	"time"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// Timestamp renders date in the EXIF encoding with the synthetic 09:00:00
// time used when only a calendar date could be recovered.
func Timestamp(date time.Time) string {
	return fmt.Sprintf("%04d:%02d:%02d 09:00:00", date.Year(), date.Month(), date.Day())
}

// Apply stamps date into the DateTimeOriginal, DateTimeDigitized and DateTime
// tags of the JPEG at srcPath and saves the result as dstPath. The source
// file is never touched. A file without an EXIF block gets a fresh one.
func Apply(srcPath, dstPath string, date time.Time) error {
	jmp := jpegstructure.NewJpegMediaParser()

	intfc, err := jmp.ParseFile(srcPath)
	if err != nil {
		return fmt.Errorf("parse jpeg: %w", err)
	}
	sl := intfc.(*jpegstructure.SegmentList)

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		rootIb, err = newExifBuilder()
		if err != nil {
			return err
		}
	}

	ts := Timestamp(date)

	exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0/Exif")
	if err != nil {
		return fmt.Errorf("exif ifd: %w", err)
	}
	if err := exifIb.SetStandardWithName("DateTimeOriginal", ts); err != nil {
		return fmt.Errorf("set DateTimeOriginal: %w", err)
	}
	if err := exifIb.SetStandardWithName("DateTimeDigitized", ts); err != nil {
		return fmt.Errorf("set DateTimeDigitized: %w", err)
	}

	rootIfdIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return fmt.Errorf("root ifd: %w", err)
	}
	if err := rootIfdIb.SetStandardWithName("DateTime", ts); err != nil {
		return fmt.Errorf("set DateTime: %w", err)
	}

	if err := sl.SetExif(rootIb); err != nil {
		return fmt.Errorf("set exif segment: %w", err)
	}

	b := new(bytes.Buffer)
	if err := sl.Write(b); err != nil {
		return fmt.Errorf("serialize jpeg: %w", err)
	}

	if err := os.WriteFile(dstPath, b.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// newExifBuilder starts an EXIF block from scratch for files that have none.
func newExifBuilder() (*exif.IfdBuilder, error) {
	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, fmt.Errorf("ifd mapping: %w", err)
	}

	ti := exif.NewTagIndex()
	if err := exif.LoadStandardTags(ti); err != nil {
		return nil, fmt.Errorf("load standard tags: %w", err)
	}

	return exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder), nil
}
