// Package dbgap parses dbGaP-formatted XML data dictionaries.
//
// # Format
//
// A dictionary file has an arbitrarily-named root element carrying a
// required study_id attribute plus optional study_name,
// study_description, and appl_id attributes. Every direct child must be
// a <variable> element:
//
//	<data_table study_id="phs000001.v1" study_name="Example Study">
//	  <variable id="v1" dd_id="demographics" section="Demographics">
//	    <name>GENDER</name>
//	    <title>Gender of participant</title>
//	    <type>encoded value</type>
//	    <value code="1">Male</value>
//	    <value code="2">Female</value>
//	  </variable>
//	</data_table>
//
// Parsing is a pure function from one blob of text to one Study; the
// repository and file path are supplied by the caller because the XML
// carries neither.
//
// # Strictness
//
// The upstream generators that produce these files are inconsistent, so
// missing optional attributes and children default to the empty string.
// Structural defects, however, are never tolerated: a missing study_id,
// a non-<variable> child of the root, duplicated text children, or a
// <value> without a code attribute abort the whole run, because an index
// that silently skipped a file could hide exactly the duplicate it
// exists to find.
package dbgap
