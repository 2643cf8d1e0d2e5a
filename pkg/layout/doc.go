// Package layout reads and writes Florence keyboard layout documents and
// converts their keys to and from scene objects.
//
// # Document
//
// A layout is either a bare keyboard:
//
//	<keyboard>
//	  <width>30</width>
//	  <height>10</height>
//	  <key><code>9</code><xpos>1</xpos><ypos>1</ypos></key>
//	</keyboard>
//
// or a full layout with metadata and extensions:
//
//	<layout>
//	  <informations><name>compact</name><florence_version>0.2</florence_version></informations>
//	  <keyboard>...</keyboard>
//	  <extension><name>arrows</name><placement>right</placement><keyboard>...</keyboard></extension>
//	</layout>
//
// Key positions are key centers in layout units; sizes default to 2.
// [Write] reproduces the root form that was read and omits sizes equal to
// the default.
//
// # Scene Conversion
//
// [Keyboard.Objects] turns keys into [scene.Object] values scaled to
// device units, with the *Key attached as the object payload.
// [Keyboard.Sync] writes edited geometry back. Objects created in the
// editor have no payload and become new keys bound to their label.
package layout
