// Package abi describes the callable surface of a compiled contract.
//
// The compiler emits one ContractABI per contract; deployment tooling and
// transaction routers decode it to find methods and decipher their
// parameter and return-value schemas. The structure is versioned because
// fields may be added over time and decoders must select the matching
// schema.
package abi

import (
	"strings"

	"github.com/lumenlang/lumenrt/codec"
)

// Version is the ABI schema version written by this compiler.
const Version uint16 = 1

// Method kinds.
const (
	KindConstructor = "constructor"
	KindFunction    = "function"
)

// constructorName is the reserved method name that deploys a contract.
const constructorName = "init"

// Param is the schema of one method parameter.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Output is the schema of one method return value.
type Output struct {
	Type string `json:"type"`
}

// Method describes one contract method callable by transactions.
type Method struct {
	Name string `json:"name"`
	// Kind is either "constructor" or "function".
	Kind    string   `json:"type"`
	Inputs  []Param  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

// ContractABI is the contract meta information generated by the compiler.
type ContractABI struct {
	// ABIVersion selects the decoding schema; fields may be added in
	// later versions.
	ABIVersion uint16   `json:"abi_version"`
	Methods    []Method `json:"methods"`
}

// New creates an empty ContractABI at the current version.
func New() *ContractABI {
	return &ContractABI{ABIVersion: Version}
}

// AddMethod appends a method, inferring its kind from the name: the
// reserved "init" method is the constructor, everything else a function.
func (a *ContractABI) AddMethod(name string, inputs []Param, outputs []Output) {
	kind := KindFunction
	if name == constructorName {
		kind = KindConstructor
	}
	a.Methods = append(a.Methods, Method{
		Name:    name,
		Kind:    kind,
		Inputs:  inputs,
		Outputs: outputs,
	})
}

// Method returns the method with the given ABI name.
func (a *ContractABI) Method(name string) (*Method, bool) {
	for i := range a.Methods {
		if a.Methods[i].Name == name {
			return &a.Methods[i], true
		}
	}
	return nil, false
}

// ToJSON encodes the ABI with the default codec.
func (a *ContractABI) ToJSON() ([]byte, error) {
	return codec.Default.Marshal(a)
}

// FromJSON decodes a ContractABI.
func FromJSON(data []byte) (*ContractABI, error) {
	var a ContractABI
	if err := codec.Default.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// MethodName strips the qualified contract path from a function symbol,
// leaving the ABI-visible method name: "token.erc20.transfer" becomes
// "transfer".
func MethodName(qualified string) string {
	if i := strings.LastIndexByte(qualified, '.'); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
