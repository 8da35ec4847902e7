package codec

import "encoding/xml"

// Fixed root-element metadata. The external tool requires these attributes
// on every document; their values carry no meaning here and stay constant
// across encodes.
const (
	documentType          = "com.apple.IDECoreDataModeler.DataModel"
	documentVersion       = "1.0"
	lastSavedToolsVersion = "23605"
	systemVersion         = "24G84"
	minimumToolsVersion   = "Automatic"
	sourceLanguage        = "Swift"
)

// xmlHeader replaces xml.Header: the external tool writes standalone="yes".
const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// xmlModel is the wire form of a model document. Field order fixes the
// attribute order in the output.
type xmlModel struct {
	XMLName           xml.Name           `xml:"model"`
	Type              string             `xml:"type,attr"`
	Name              string             `xml:"name,attr"`
	VersionIdentifier string             `xml:"userDefinedModelVersionIdentifier,attr"`
	DocumentVersion   string             `xml:"documentVersion,attr"`
	LastSavedTools    string             `xml:"lastSavedToolsVersion,attr"`
	SystemVersion     string             `xml:"systemVersion,attr"`
	MinimumTools      string             `xml:"minimumToolsVersion,attr"`
	SourceLanguage    string             `xml:"sourceLanguage,attr"`
	Entities          []xmlEntity        `xml:"entity"`
	Configurations    []xmlConfiguration `xml:"configuration"`
}

type xmlEntity struct {
	Name                  string                    `xml:"name,attr"`
	RepresentedClassName  string                    `xml:"representedClassName,attr,omitempty"`
	ParentEntity          string                    `xml:"parentEntity,attr,omitempty"`
	IsAbstract            string                    `xml:"isAbstract,attr,omitempty"`
	Attributes            []xmlAttribute            `xml:"attribute"`
	Relationships         []xmlRelationship         `xml:"relationship"`
	FetchedProperties     []xmlFetchedProperty      `xml:"fetchedProperty"`
	UserInfo              *xmlUserInfo              `xml:"userInfo,omitempty"`
	UniquenessConstraints *xmlUniquenessConstraints `xml:"uniquenessConstraints,omitempty"`
	CompoundIndexes       *xmlCompoundIndexes       `xml:"compoundIndexes,omitempty"`
}

type xmlAttribute struct {
	Name               string       `xml:"name,attr"`
	Optional           string       `xml:"optional,attr"`
	Transient          string       `xml:"transient,attr,omitempty"`
	Indexed            string       `xml:"indexed,attr,omitempty"`
	AttributeType      string       `xml:"attributeType,attr"`
	DefaultValueString *string      `xml:"defaultValueString,attr"`
	UserInfo           *xmlUserInfo `xml:"userInfo,omitempty"`
}

type xmlRelationship struct {
	Name              string       `xml:"name,attr"`
	Optional          string       `xml:"optional,attr"`
	Transient         string       `xml:"transient,attr,omitempty"`
	ToMany            string       `xml:"toMany,attr,omitempty"`
	Ordered           string       `xml:"ordered,attr,omitempty"`
	MinCount          string       `xml:"minCount,attr,omitempty"`
	MaxCount          string       `xml:"maxCount,attr,omitempty"`
	DeletionRule      string       `xml:"deletionRule,attr"`
	DestinationEntity string       `xml:"destinationEntity,attr"`
	InverseName       string       `xml:"inverseName,attr,omitempty"`
	InverseEntity     string       `xml:"inverseEntity,attr,omitempty"`
	UserInfo          *xmlUserInfo `xml:"userInfo,omitempty"`
}

type xmlFetchedProperty struct {
	Name         string           `xml:"name,attr"`
	FetchLimit   string           `xml:"fetchLimit,attr,omitempty"`
	FetchRequest *xmlFetchRequest `xml:"fetchRequest,omitempty"`
	UserInfo     *xmlUserInfo     `xml:"userInfo,omitempty"`
}

// xmlFetchRequest carries the fetched property's predicate in the nesting
// the external tool writes. Name and entity are structural noise on
// decode; encode fills them for compatibility.
type xmlFetchRequest struct {
	Name            string `xml:"name,attr"`
	Entity          string `xml:"entity,attr"`
	PredicateString string `xml:"predicateString,attr"`
}

type xmlConfiguration struct {
	Name     string            `xml:"name,attr"`
	Members  []xmlMemberEntity `xml:"memberEntity"`
	UserInfo *xmlUserInfo      `xml:"userInfo,omitempty"`
}

type xmlMemberEntity struct {
	Name string `xml:"name,attr"`
}

type xmlUserInfo struct {
	Entries []xmlEntry `xml:"entry"`
}

type xmlEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type xmlUniquenessConstraints struct {
	Constraints []xmlUniquenessConstraint `xml:"uniquenessConstraint"`
}

type xmlUniquenessConstraint struct {
	Constraints []xmlConstraint `xml:"constraint"`
}

type xmlConstraint struct {
	Value string `xml:"value,attr"`
}

type xmlCompoundIndexes struct {
	Indexes []xmlCompoundIndex `xml:"compoundIndex"`
}

type xmlCompoundIndex struct {
	Indexes []xmlIndex `xml:"index"`
}

type xmlIndex struct {
	Value string `xml:"value,attr"`
}
