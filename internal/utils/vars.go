package utils

import "errors"

const TempDirName = ".rawget-temp"
const PartSuffix = ".part"

var ErrEmptyDownloadList = errors.New("download list has no entries")
