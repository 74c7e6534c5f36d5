package config

import (
	"gopkg.in/ini.v1"
)

// Section and key names of config.ini.
const (
	sectionFiles   = "文件路径"
	sectionColumns = "列配置"
	sectionFilter  = "筛选条件"
	sectionData    = "数据设置"
	sectionMerge   = "批注合并"
)

// applyINI applies the recognized sections of an INI document. Unknown
// sections and keys are ignored.
func (l *loader) applyINI(data []byte) error {
	// Inline comments are not stripped; separators may contain # or ;.
	f, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return err
	}

	if sec, err := f.GetSection(sectionFiles); err == nil {
		if sec.HasKey("源文件") {
			l.setPath(KeySourceFile, &l.opts.SourceFile, sec.Key("源文件").String())
		}
		if sec.HasKey("目标文件") {
			l.setPath(KeyTargetFile, &l.opts.TargetFile, sec.Key("目标文件").String())
		}
		if sec.HasKey("输出文件") {
			l.setPath(KeyOutputFile, &l.opts.OutputFile, sec.Key("输出文件").String())
		}
	}

	if sec, err := f.GetSection(sectionColumns); err == nil {
		if sec.HasKey("区域列") {
			l.setColumn(KeyRegionColumn, &l.opts.RegionColumn, sec.Key("区域列").String())
		}
		if sec.HasKey("姓名列") {
			l.setColumn(KeyNameColumn, &l.opts.NameColumn, sec.Key("姓名列").String())
		}
		if sec.HasKey("同步列") {
			l.setColumns(splitList(sec.Key("同步列").String()))
		}
	}

	if sec, err := f.GetSection(sectionFilter); err == nil && sec.HasKey("筛选区域") {
		l.setRegions(splitList(sec.Key("筛选区域").String()))
	}

	if sec, err := f.GetSection(sectionData); err == nil && sec.HasKey("数据起始行") {
		key := sec.Key("数据起始行")
		n, err := key.Int()
		if err != nil {
			l.warn(KeyStartRow, key.String(), err)
		} else {
			l.setPositive(KeyStartRow, &l.opts.StartRow, n, key.String())
		}
	}

	if sec, err := f.GetSection(sectionMerge); err == nil {
		if sec.HasKey("启用合并") {
			key := sec.Key("启用合并")
			b, err := key.Bool()
			if err != nil {
				l.warn(KeyMergeComments, key.String(), err)
			} else {
				l.opts.MergeComments = b
			}
		}
		if sec.HasKey("分隔符") {
			l.setSeparator(sec.Key("分隔符").String())
		}
		if sec.HasKey("截断长度") {
			key := sec.Key("截断长度")
			n, err := key.Int()
			if err != nil {
				l.warn(KeyTruncateLength, key.String(), err)
			} else {
				l.setPositive(KeyTruncateLength, &l.opts.TruncateLength, n, key.String())
			}
		}
	}

	return nil
}
