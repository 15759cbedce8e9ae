// Copyright (c) 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"fmt"
	"regexp"
	"strings"
)

// appBuild is defined as a variable so it can be overridden during the build
// process with '-ldflags "-X github.com/pkt-cash/sidechaind/pktconfig/version.appBuild=foo"'
// if needed.  It MUST only contain characters from semanticAlphabet per the
// semantic versioning 2.0.0 rules.
var appBuild string

var userAgentName = "unknown" // sidechaind, netparams...

// buildInfo is what can be learned from a build tag.
type buildInfo struct {
	major, minor, patch uint
	version             string
	custom              bool
	prerelease          bool
	dirty               bool
}

var info = parseBuild(appBuild)

var prereleaseRe = regexp.MustCompile(`-[0-9]+-g[0-9a-f]{8}`)

// parseBuild interprets a git describe style tag such as
// sidechaind-v0.1.0-beta-19-gfa3ba767-dirty.  Anything which does not start
// with sidechaind-vX.Y.Z is a custom build.
func parseBuild(build string) buildInfo {
	bi := buildInfo{custom: true}
	tag := "-custom"
	if len(build) > 0 {
		if _, err := fmt.Sscanf(build, "sidechaind-v%d.%d.%d",
			&bi.major, &bi.minor, &bi.patch); err == nil {
			tag = ""
			bi.custom = false
			if x := prereleaseRe.FindString(build); len(x) > 0 {
				tag += "-" + x[strings.LastIndex(x, "-")+2:]
				bi.prerelease = true
			}
			if strings.Contains(build, "-dirty") {
				tag += "-dirty"
				bi.dirty = true
			}
		} else {
			bi.major, bi.minor, bi.patch = 0, 0, 0
		}
	}
	bi.version = fmt.Sprintf("%d.%d.%d%s", bi.major, bi.minor, bi.patch, tag)
	return bi
}

func IsCustom() bool {
	return info.custom
}

func IsDirty() bool {
	return info.dirty
}

func IsPrerelease() bool {
	return info.prerelease
}

func AppMajorVersion() uint {
	return info.major
}
func AppMinorVersion() uint {
	return info.minor
}
func AppPatchVersion() uint {
	return info.patch
}

func SetUserAgentName(ua string) {
	if userAgentName != "unknown" {
		panic("setting useragent to [" + ua +
			"] failed, useragent was already set to [" + userAgentName + "]")
	}
	userAgentName = ua
}

func Version() string {
	return info.version
}

func UserAgentName() string {
	return userAgentName
}

func UserAgentVersion() string {
	return userAgentName + "/" + info.version
}
